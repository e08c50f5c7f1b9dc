package service

import "go.opentelemetry.io/otel/attribute"

func attrOutcome(code string) attribute.KeyValue {
	return attribute.String("auth.outcome", code)
}

func attrUserID(id string) attribute.KeyValue {
	return attribute.String("auth.user_id", id)
}

func attrRole(role string) attribute.KeyValue {
	return attribute.String("auth.role", role)
}
