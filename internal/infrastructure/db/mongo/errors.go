package mongo

import (
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pragma/auth-service/internal/core/domain"
)

// translateInsertError maps unique-index violations to business errors. Other
// failures are wrapped and returned as infrastructure errors.
func translateInsertError(err error) error {
	if !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("insert user: %w", err)
	}
	for _, index := range duplicateIndexes(err) {
		switch index {
		case documentIndex:
			return domain.ErrDocumentAlreadyExists
		case emailIndex:
			return domain.ErrEmailAlreadyRegistered
		}
	}
	return fmt.Errorf("insert user: unexpected duplicate key: %w", err)
}

// duplicateIndexes returns the index named by each E11000 error carried by err.
func duplicateIndexes(err error) []string {
	var msgs []string
	var we mongo.WriteException
	var bwe mongo.BulkWriteException
	var ce mongo.CommandError
	switch {
	case errors.As(err, &we):
		for _, e := range we.WriteErrors {
			if e.Code == 11000 || e.Code == 11001 {
				msgs = append(msgs, e.Message)
			}
		}
	case errors.As(err, &bwe):
		for _, e := range bwe.WriteErrors {
			if e.Code == 11000 || e.Code == 11001 {
				msgs = append(msgs, e.Message)
			}
		}
	case errors.As(err, &ce):
		msgs = append(msgs, ce.Message)
	}

	indexes := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		if name, ok := indexName(msg); ok {
			indexes = append(indexes, name)
		}
	}
	return indexes
}

// indexName reads the "index: <name> " token of a duplicate key message. The
// token precedes the duplicated key value, so only its first occurrence counts.
func indexName(msg string) (string, bool) {
	_, rest, ok := strings.Cut(msg, "index: ")
	if !ok {
		return "", false
	}
	name, _, ok := strings.Cut(rest, " ")
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
