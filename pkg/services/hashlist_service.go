package services

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
)

// HashListService manages hash lists and their items. uncracked_count is
// recomputed transactionally on every mutation so the matcher and the
// state engine can trust it without counting rows.
type HashListService struct {
	client *ent.Client
}

// NewHashListService creates a new HashListService
func NewHashListService(client *ent.Client) *HashListService {
	return &HashListService{client: client}
}

// HashItemInput is one target hash in a create or append request.
type HashItemInput struct {
	Hash     string         `json:"hash"`
	Salt     string         `json:"salt,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// CreateHashListRequest is the operator payload for a new hash list.
type CreateHashListRequest struct {
	ProjectID   int             `json:"project_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	HashTypeID  int             `json:"hash_type_id"`
	Separator   string          `json:"separator,omitempty"`
	Items       []HashItemInput `json:"items,omitempty"`
}

// CreateHashList creates a hash list and its initial items in one
// transaction. Duplicate items within the batch collapse to one row.
func (s *HashListService) CreateHashList(httpCtx context.Context, req CreateHashListRequest) (*ent.HashList, error) {
	if req.ProjectID == 0 {
		return nil, NewValidationError("project_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.HashTypeID < 0 {
		return nil, NewValidationError("hash_type_id", "must be a hashcat hash mode")
	}
	for i, item := range req.Items {
		if item.Hash == "" {
			return nil, NewValidationError(fmt.Sprintf("items[%d].hash", i), "required")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.HashList.Create().
		SetProjectID(req.ProjectID).
		SetName(req.Name).
		SetDescription(req.Description).
		SetHashTypeID(req.HashTypeID)
	if req.Separator != "" {
		builder.SetSeparator(req.Separator)
	}
	hl, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrInvalidInput
		}
		return nil, fmt.Errorf("failed to create hash list: %w", err)
	}

	if err := s.insertItemsTx(ctx, tx, hl.ID, req.Items); err != nil {
		return nil, err
	}
	hl, err = s.recountTx(ctx, tx, hl.ID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return hl, nil
}

// GetHashList retrieves a hash list by ID
func (s *HashListService) GetHashList(ctx context.Context, id int) (*ent.HashList, error) {
	hl, err := s.client.HashList.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get hash list: %w", err)
	}
	return hl, nil
}

// AddItems appends items to an existing hash list. Items already present
// are skipped, so retrying a failed upload converges.
func (s *HashListService) AddItems(httpCtx context.Context, hashListID int, items []HashItemInput) (*ent.HashList, error) {
	if len(items) == 0 {
		return nil, NewValidationError("items", "required")
	}
	for i, item := range items {
		if item.Hash == "" {
			return nil, NewValidationError(fmt.Sprintf("items[%d].hash", i), "required")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.HashList.Query().Where(hashlist.IDEQ(hashListID)).Only(ctx); err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load hash list: %w", err)
	}

	if err := s.insertItemsTx(ctx, tx, hashListID, items); err != nil {
		return nil, err
	}
	hl, err := s.recountTx(ctx, tx, hashListID)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return hl, nil
}

// RenderUncracked builds the text/plain body agents download before a
// run: one uncracked hash per line, salt appended behind the list's
// separator when present. The checksum is the base64 MD5 of the body,
// matching the Attack DTO contract.
func (s *HashListService) RenderUncracked(ctx context.Context, hashListID int) ([]byte, string, error) {
	hl, err := s.GetHashList(ctx, hashListID)
	if err != nil {
		return nil, "", err
	}

	items, err := s.client.HashItem.Query().
		Where(hashitem.HashListIDEQ(hashListID), hashitem.PlaintextIsNil()).
		Order(ent.Asc(hashitem.FieldID)).
		All(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to query uncracked items: %w", err)
	}

	var body bytes.Buffer
	for _, item := range items {
		body.WriteString(item.HashValue)
		if item.Salt != "" {
			body.WriteString(hl.Separator)
			body.WriteString(item.Salt)
		}
		body.WriteByte('\n')
	}

	sum := md5.Sum(body.Bytes())
	return body.Bytes(), base64.StdEncoding.EncodeToString(sum[:]), nil
}

// CrackedHashValues returns the hash values already recovered for a
// list. Agents poll this as a zap list to prune their in-memory target
// set mid-run.
func (s *HashListService) CrackedHashValues(ctx context.Context, hashListID int) ([]string, error) {
	values, err := s.client.HashItem.Query().
		Where(hashitem.HashListIDEQ(hashListID), hashitem.PlaintextNotNil()).
		Order(ent.Asc(hashitem.FieldID)).
		Select(hashitem.FieldHashValue).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query cracked items: %w", err)
	}
	return values, nil
}

// insertItemsTx bulk-inserts items, ignoring rows that already exist.
func (s *HashListService) insertItemsTx(ctx context.Context, tx *ent.Tx, hashListID int, items []HashItemInput) error {
	if len(items) == 0 {
		return nil
	}
	builders := make([]*ent.HashItemCreate, 0, len(items))
	for _, item := range items {
		b := tx.HashItem.Create().
			SetHashListID(hashListID).
			SetHashValue(item.Hash).
			SetSalt(item.Salt)
		if item.Metadata != nil {
			b.SetMetadata(item.Metadata)
		}
		builders = append(builders, b)
	}
	err := tx.HashItem.CreateBulk(builders...).
		OnConflictColumns(hashitem.FieldHashListID, hashitem.FieldHashValue, hashitem.FieldSalt).
		DoNothing().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to insert hash items: %w", err)
	}
	return nil
}

// recountTx recomputes item_count and uncracked_count from the items
// table inside the caller's transaction.
func (s *HashListService) recountTx(ctx context.Context, tx *ent.Tx, hashListID int) (*ent.HashList, error) {
	total, err := tx.HashItem.Query().
		Where(hashitem.HashListIDEQ(hashListID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}
	uncracked, err := tx.HashItem.Query().
		Where(hashitem.HashListIDEQ(hashListID), hashitem.PlaintextIsNil()).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count uncracked items: %w", err)
	}
	hl, err := tx.HashList.UpdateOneID(hashListID).
		SetItemCount(int64(total)).
		SetUncrackedCount(int64(uncracked)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update hash list counters: %w", err)
	}
	return hl, nil
}
