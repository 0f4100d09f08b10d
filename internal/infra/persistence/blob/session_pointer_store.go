// Package blob stores session pointers as JSON objects in a gocloud.dev bucket.
package blob

import (
	"context"
	"encoding/json"
	"path"

	"cambaeats/internal/domain/repository"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"
)

// pointerDocument is the persisted layout: {"cartId": "..."} or {"cartId": null}.
type pointerDocument struct {
	CartID *string `json:"cartId"`
}

type sessionPointerStore struct {
	bucket *blob.Bucket
	key    string
}

// NewSessionPointerStore stores the pointer in the object <key>.json
func NewSessionPointerStore(bucket *blob.Bucket, key string) repository.SessionPointerStore {
	return &sessionPointerStore{
		bucket: bucket,
		key:    key + ".json",
	}
}

func (s *sessionPointerStore) Load(ctx context.Context) (string, bool, error) {
	data, err := s.bucket.ReadAll(ctx, s.key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to read %s", s.key)
	}

	var doc pointerDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return "", false, errors.Wrapf(err, "failed to decode %s", s.key)
	}
	if doc.CartID == nil || *doc.CartID == "" {
		return "", false, nil
	}

	return *doc.CartID, true, nil
}

func (s *sessionPointerStore) Save(ctx context.Context, cartID string) error {
	return s.write(ctx, pointerDocument{CartID: &cartID})
}

// Clear keeps the object and nulls the identifier.
func (s *sessionPointerStore) Clear(ctx context.Context) error {
	return s.write(ctx, pointerDocument{})
}

func (s *sessionPointerStore) write(ctx context.Context, doc pointerDocument) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := s.bucket.WriteAll(ctx, s.key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return errors.Wrapf(err, "failed to write %s", s.key)
	}

	return nil
}

type sessionPointerProvider struct {
	bucket *blob.Bucket
	key    string
}

// NewSessionPointerProvider scopes pointer objects under key, one per session
func NewSessionPointerProvider(bucket *blob.Bucket, key string) repository.SessionPointerProvider {
	return &sessionPointerProvider{bucket: bucket, key: key}
}

func (p *sessionPointerProvider) ForSession(sessionID string) repository.SessionPointerStore {
	return NewSessionPointerStore(p.bucket, path.Join(p.key, sessionID))
}
