// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/vidsage/vidsage/ent/channel"
	"github.com/vidsage/vidsage/ent/content"
	"github.com/vidsage/vidsage/ent/cronjob"
	"github.com/vidsage/vidsage/ent/job"
	"github.com/vidsage/vidsage/ent/predicate"
	"github.com/vidsage/vidsage/ent/prompt"
	"github.com/vidsage/vidsage/ent/quotausage"
	"github.com/vidsage/vidsage/ent/quotaviolation"
	"github.com/vidsage/vidsage/ent/segment"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeChannel        = "Channel"
	TypeContent        = "Content"
	TypeCronJob        = "CronJob"
	TypeJob            = "Job"
	TypePrompt         = "Prompt"
	TypeQuotaUsage     = "QuotaUsage"
	TypeQuotaViolation = "QuotaViolation"
	TypeSegment        = "Segment"
)

// ChannelMutation represents an operation that mutates the Channel nodes in the graph.
type ChannelMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	source_type          *channel.SourceType
	external_id          *string
	display_name         *string
	upload_collection_id *string
	cron_pattern         *string
	fetch_last_n         *int
	addfetch_last_n      *int
	author_context       *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	contents             map[string]struct{}
	removedcontents      map[string]struct{}
	clearedcontents      bool
	done                 bool
	oldValue             func(context.Context) (*Channel, error)
	predicates           []predicate.Channel
}

var _ ent.Mutation = (*ChannelMutation)(nil)

// channelOption allows management of the mutation configuration using functional options.
type channelOption func(*ChannelMutation)

// newChannelMutation creates new mutation for the Channel entity.
func newChannelMutation(c config, op Op, opts ...channelOption) *ChannelMutation {
	m := &ChannelMutation{
		config:        c,
		op:            op,
		typ:           TypeChannel,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withChannelID sets the ID field of the mutation.
func withChannelID(id string) channelOption {
	return func(m *ChannelMutation) {
		var (
			err   error
			once  sync.Once
			value *Channel
		)
		m.oldValue = func(ctx context.Context) (*Channel, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Channel.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withChannel sets the old Channel of the mutation.
func withChannel(node *Channel) channelOption {
	return func(m *ChannelMutation) {
		m.oldValue = func(context.Context) (*Channel, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ChannelMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ChannelMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Channel entities.
func (m *ChannelMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ChannelMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ChannelMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Channel.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourceType sets the "source_type" field.
func (m *ChannelMutation) SetSourceType(ct channel.SourceType) {
	m.source_type = &ct
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *ChannelMutation) SourceType() (r channel.SourceType, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldSourceType(ctx context.Context) (v channel.SourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *ChannelMutation) ResetSourceType() {
	m.source_type = nil
}

// SetExternalID sets the "external_id" field.
func (m *ChannelMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *ChannelMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *ChannelMutation) ResetExternalID() {
	m.external_id = nil
}

// SetDisplayName sets the "display_name" field.
func (m *ChannelMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *ChannelMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *ChannelMutation) ResetDisplayName() {
	m.display_name = nil
}

// SetUploadCollectionID sets the "upload_collection_id" field.
func (m *ChannelMutation) SetUploadCollectionID(s string) {
	m.upload_collection_id = &s
}

// UploadCollectionID returns the value of the "upload_collection_id" field in the mutation.
func (m *ChannelMutation) UploadCollectionID() (r string, exists bool) {
	v := m.upload_collection_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadCollectionID returns the old "upload_collection_id" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldUploadCollectionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadCollectionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadCollectionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadCollectionID: %w", err)
	}
	return oldValue.UploadCollectionID, nil
}

// ClearUploadCollectionID clears the value of the "upload_collection_id" field.
func (m *ChannelMutation) ClearUploadCollectionID() {
	m.upload_collection_id = nil
	m.clearedFields[channel.FieldUploadCollectionID] = struct{}{}
}

// UploadCollectionIDCleared returns if the "upload_collection_id" field was cleared in this mutation.
func (m *ChannelMutation) UploadCollectionIDCleared() bool {
	_, ok := m.clearedFields[channel.FieldUploadCollectionID]
	return ok
}

// ResetUploadCollectionID resets all changes to the "upload_collection_id" field.
func (m *ChannelMutation) ResetUploadCollectionID() {
	m.upload_collection_id = nil
	delete(m.clearedFields, channel.FieldUploadCollectionID)
}

// SetCronPattern sets the "cron_pattern" field.
func (m *ChannelMutation) SetCronPattern(s string) {
	m.cron_pattern = &s
}

// CronPattern returns the value of the "cron_pattern" field in the mutation.
func (m *ChannelMutation) CronPattern() (r string, exists bool) {
	v := m.cron_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldCronPattern returns the old "cron_pattern" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldCronPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCronPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCronPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCronPattern: %w", err)
	}
	return oldValue.CronPattern, nil
}

// ResetCronPattern resets all changes to the "cron_pattern" field.
func (m *ChannelMutation) ResetCronPattern() {
	m.cron_pattern = nil
}

// SetFetchLastN sets the "fetch_last_n" field.
func (m *ChannelMutation) SetFetchLastN(i int) {
	m.fetch_last_n = &i
	m.addfetch_last_n = nil
}

// FetchLastN returns the value of the "fetch_last_n" field in the mutation.
func (m *ChannelMutation) FetchLastN() (r int, exists bool) {
	v := m.fetch_last_n
	if v == nil {
		return
	}
	return *v, true
}

// OldFetchLastN returns the old "fetch_last_n" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldFetchLastN(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFetchLastN is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFetchLastN requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFetchLastN: %w", err)
	}
	return oldValue.FetchLastN, nil
}

// AddFetchLastN adds i to the "fetch_last_n" field.
func (m *ChannelMutation) AddFetchLastN(i int) {
	if m.addfetch_last_n != nil {
		*m.addfetch_last_n += i
	} else {
		m.addfetch_last_n = &i
	}
}

// AddedFetchLastN returns the value that was added to the "fetch_last_n" field in this mutation.
func (m *ChannelMutation) AddedFetchLastN() (r int, exists bool) {
	v := m.addfetch_last_n
	if v == nil {
		return
	}
	return *v, true
}

// ResetFetchLastN resets all changes to the "fetch_last_n" field.
func (m *ChannelMutation) ResetFetchLastN() {
	m.fetch_last_n = nil
	m.addfetch_last_n = nil
}

// SetAuthorContext sets the "author_context" field.
func (m *ChannelMutation) SetAuthorContext(s string) {
	m.author_context = &s
}

// AuthorContext returns the value of the "author_context" field in the mutation.
func (m *ChannelMutation) AuthorContext() (r string, exists bool) {
	v := m.author_context
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthorContext returns the old "author_context" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldAuthorContext(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthorContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthorContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthorContext: %w", err)
	}
	return oldValue.AuthorContext, nil
}

// ClearAuthorContext clears the value of the "author_context" field.
func (m *ChannelMutation) ClearAuthorContext() {
	m.author_context = nil
	m.clearedFields[channel.FieldAuthorContext] = struct{}{}
}

// AuthorContextCleared returns if the "author_context" field was cleared in this mutation.
func (m *ChannelMutation) AuthorContextCleared() bool {
	_, ok := m.clearedFields[channel.FieldAuthorContext]
	return ok
}

// ResetAuthorContext resets all changes to the "author_context" field.
func (m *ChannelMutation) ResetAuthorContext() {
	m.author_context = nil
	delete(m.clearedFields, channel.FieldAuthorContext)
}

// SetCreatedAt sets the "created_at" field.
func (m *ChannelMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ChannelMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ChannelMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ChannelMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ChannelMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Channel entity.
// If the Channel object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ChannelMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ChannelMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddContentIDs adds the "contents" edge to the Content entity by ids.
func (m *ChannelMutation) AddContentIDs(ids ...string) {
	if m.contents == nil {
		m.contents = make(map[string]struct{})
	}
	for i := range ids {
		m.contents[ids[i]] = struct{}{}
	}
}

// ClearContents clears the "contents" edge to the Content entity.
func (m *ChannelMutation) ClearContents() {
	m.clearedcontents = true
}

// ContentsCleared reports if the "contents" edge to the Content entity was cleared.
func (m *ChannelMutation) ContentsCleared() bool {
	return m.clearedcontents
}

// RemoveContentIDs removes the "contents" edge to the Content entity by IDs.
func (m *ChannelMutation) RemoveContentIDs(ids ...string) {
	if m.removedcontents == nil {
		m.removedcontents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.contents, ids[i])
		m.removedcontents[ids[i]] = struct{}{}
	}
}

// RemovedContents returns the removed IDs of the "contents" edge to the Content entity.
func (m *ChannelMutation) RemovedContentsIDs() (ids []string) {
	for id := range m.removedcontents {
		ids = append(ids, id)
	}
	return
}

// ContentsIDs returns the "contents" edge IDs in the mutation.
func (m *ChannelMutation) ContentsIDs() (ids []string) {
	for id := range m.contents {
		ids = append(ids, id)
	}
	return
}

// ResetContents resets all changes to the "contents" edge.
func (m *ChannelMutation) ResetContents() {
	m.contents = nil
	m.clearedcontents = false
	m.removedcontents = nil
}

// Where appends a list predicates to the ChannelMutation builder.
func (m *ChannelMutation) Where(ps ...predicate.Channel) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ChannelMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ChannelMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Channel, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ChannelMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ChannelMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Channel).
func (m *ChannelMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ChannelMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.source_type != nil {
		fields = append(fields, channel.FieldSourceType)
	}
	if m.external_id != nil {
		fields = append(fields, channel.FieldExternalID)
	}
	if m.display_name != nil {
		fields = append(fields, channel.FieldDisplayName)
	}
	if m.upload_collection_id != nil {
		fields = append(fields, channel.FieldUploadCollectionID)
	}
	if m.cron_pattern != nil {
		fields = append(fields, channel.FieldCronPattern)
	}
	if m.fetch_last_n != nil {
		fields = append(fields, channel.FieldFetchLastN)
	}
	if m.author_context != nil {
		fields = append(fields, channel.FieldAuthorContext)
	}
	if m.created_at != nil {
		fields = append(fields, channel.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, channel.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ChannelMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case channel.FieldSourceType:
		return m.SourceType()
	case channel.FieldExternalID:
		return m.ExternalID()
	case channel.FieldDisplayName:
		return m.DisplayName()
	case channel.FieldUploadCollectionID:
		return m.UploadCollectionID()
	case channel.FieldCronPattern:
		return m.CronPattern()
	case channel.FieldFetchLastN:
		return m.FetchLastN()
	case channel.FieldAuthorContext:
		return m.AuthorContext()
	case channel.FieldCreatedAt:
		return m.CreatedAt()
	case channel.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ChannelMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case channel.FieldSourceType:
		return m.OldSourceType(ctx)
	case channel.FieldExternalID:
		return m.OldExternalID(ctx)
	case channel.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case channel.FieldUploadCollectionID:
		return m.OldUploadCollectionID(ctx)
	case channel.FieldCronPattern:
		return m.OldCronPattern(ctx)
	case channel.FieldFetchLastN:
		return m.OldFetchLastN(ctx)
	case channel.FieldAuthorContext:
		return m.OldAuthorContext(ctx)
	case channel.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case channel.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Channel field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelMutation) SetField(name string, value ent.Value) error {
	switch name {
	case channel.FieldSourceType:
		v, ok := value.(channel.SourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case channel.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case channel.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case channel.FieldUploadCollectionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadCollectionID(v)
		return nil
	case channel.FieldCronPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCronPattern(v)
		return nil
	case channel.FieldFetchLastN:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFetchLastN(v)
		return nil
	case channel.FieldAuthorContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthorContext(v)
		return nil
	case channel.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case channel.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Channel field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ChannelMutation) AddedFields() []string {
	var fields []string
	if m.addfetch_last_n != nil {
		fields = append(fields, channel.FieldFetchLastN)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ChannelMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case channel.FieldFetchLastN:
		return m.AddedFetchLastN()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ChannelMutation) AddField(name string, value ent.Value) error {
	switch name {
	case channel.FieldFetchLastN:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFetchLastN(v)
		return nil
	}
	return fmt.Errorf("unknown Channel numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ChannelMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(channel.FieldUploadCollectionID) {
		fields = append(fields, channel.FieldUploadCollectionID)
	}
	if m.FieldCleared(channel.FieldAuthorContext) {
		fields = append(fields, channel.FieldAuthorContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ChannelMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ChannelMutation) ClearField(name string) error {
	switch name {
	case channel.FieldUploadCollectionID:
		m.ClearUploadCollectionID()
		return nil
	case channel.FieldAuthorContext:
		m.ClearAuthorContext()
		return nil
	}
	return fmt.Errorf("unknown Channel nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ChannelMutation) ResetField(name string) error {
	switch name {
	case channel.FieldSourceType:
		m.ResetSourceType()
		return nil
	case channel.FieldExternalID:
		m.ResetExternalID()
		return nil
	case channel.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case channel.FieldUploadCollectionID:
		m.ResetUploadCollectionID()
		return nil
	case channel.FieldCronPattern:
		m.ResetCronPattern()
		return nil
	case channel.FieldFetchLastN:
		m.ResetFetchLastN()
		return nil
	case channel.FieldAuthorContext:
		m.ResetAuthorContext()
		return nil
	case channel.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case channel.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Channel field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ChannelMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.contents != nil {
		edges = append(edges, channel.EdgeContents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ChannelMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case channel.EdgeContents:
		ids := make([]ent.Value, 0, len(m.contents))
		for id := range m.contents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ChannelMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedcontents != nil {
		edges = append(edges, channel.EdgeContents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ChannelMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case channel.EdgeContents:
		ids := make([]ent.Value, 0, len(m.removedcontents))
		for id := range m.removedcontents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ChannelMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontents {
		edges = append(edges, channel.EdgeContents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ChannelMutation) EdgeCleared(name string) bool {
	switch name {
	case channel.EdgeContents:
		return m.clearedcontents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ChannelMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Channel unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ChannelMutation) ResetEdge(name string) error {
	switch name {
	case channel.EdgeContents:
		m.ResetContents()
		return nil
	}
	return fmt.Errorf("unknown Channel edge %s", name)
}

// ContentMutation represents an operation that mutates the Content nodes in the graph.
type ContentMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	external_video_id         *string
	title                     *string
	description               *string
	published_at              *time.Time
	duration_sec              *int
	addduration_sec           *int
	view_count                *int64
	addview_count             *int64
	thumbnail                 *string
	canonical_url             *string
	expected_segment_count    *int
	addexpected_segment_count *int
	state                     *content.State
	combined_analysis         *map[string]interface{}
	models_used               *[]string
	appendmodels_used         []string
	prompt_version            *string
	combined_at               *time.Time
	last_error                *string
	statistics                *[]map[string]interface{}
	appendstatistics          []map[string]interface{}
	created_at                *time.Time
	updated_at                *time.Time
	clearedFields             map[string]struct{}
	channel                   *string
	clearedchannel            bool
	segments                  map[string]struct{}
	removedsegments           map[string]struct{}
	clearedsegments           bool
	done                      bool
	oldValue                  func(context.Context) (*Content, error)
	predicates                []predicate.Content
}

var _ ent.Mutation = (*ContentMutation)(nil)

// contentOption allows management of the mutation configuration using functional options.
type contentOption func(*ContentMutation)

// newContentMutation creates new mutation for the Content entity.
func newContentMutation(c config, op Op, opts ...contentOption) *ContentMutation {
	m := &ContentMutation{
		config:        c,
		op:            op,
		typ:           TypeContent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContentID sets the ID field of the mutation.
func withContentID(id string) contentOption {
	return func(m *ContentMutation) {
		var (
			err   error
			once  sync.Once
			value *Content
		)
		m.oldValue = func(ctx context.Context) (*Content, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Content.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContent sets the old Content of the mutation.
func withContent(node *Content) contentOption {
	return func(m *ContentMutation) {
		m.oldValue = func(context.Context) (*Content, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Content entities.
func (m *ContentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Content.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannelID sets the "channel_id" field.
func (m *ContentMutation) SetChannelID(s string) {
	m.channel = &s
}

// ChannelID returns the value of the "channel_id" field in the mutation.
func (m *ContentMutation) ChannelID() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannelID returns the old "channel_id" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldChannelID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannelID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannelID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannelID: %w", err)
	}
	return oldValue.ChannelID, nil
}

// ResetChannelID resets all changes to the "channel_id" field.
func (m *ContentMutation) ResetChannelID() {
	m.channel = nil
}

// SetExternalVideoID sets the "external_video_id" field.
func (m *ContentMutation) SetExternalVideoID(s string) {
	m.external_video_id = &s
}

// ExternalVideoID returns the value of the "external_video_id" field in the mutation.
func (m *ContentMutation) ExternalVideoID() (r string, exists bool) {
	v := m.external_video_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalVideoID returns the old "external_video_id" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldExternalVideoID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalVideoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalVideoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalVideoID: %w", err)
	}
	return oldValue.ExternalVideoID, nil
}

// ResetExternalVideoID resets all changes to the "external_video_id" field.
func (m *ContentMutation) ResetExternalVideoID() {
	m.external_video_id = nil
}

// SetTitle sets the "title" field.
func (m *ContentMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ContentMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ContentMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *ContentMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ContentMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ContentMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[content.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ContentMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[content.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ContentMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, content.FieldDescription)
}

// SetPublishedAt sets the "published_at" field.
func (m *ContentMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *ContentMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *ContentMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[content.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *ContentMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[content.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *ContentMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, content.FieldPublishedAt)
}

// SetDurationSec sets the "duration_sec" field.
func (m *ContentMutation) SetDurationSec(i int) {
	m.duration_sec = &i
	m.addduration_sec = nil
}

// DurationSec returns the value of the "duration_sec" field in the mutation.
func (m *ContentMutation) DurationSec() (r int, exists bool) {
	v := m.duration_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSec returns the old "duration_sec" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldDurationSec(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSec: %w", err)
	}
	return oldValue.DurationSec, nil
}

// AddDurationSec adds i to the "duration_sec" field.
func (m *ContentMutation) AddDurationSec(i int) {
	if m.addduration_sec != nil {
		*m.addduration_sec += i
	} else {
		m.addduration_sec = &i
	}
}

// AddedDurationSec returns the value that was added to the "duration_sec" field in this mutation.
func (m *ContentMutation) AddedDurationSec() (r int, exists bool) {
	v := m.addduration_sec
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSec clears the value of the "duration_sec" field.
func (m *ContentMutation) ClearDurationSec() {
	m.duration_sec = nil
	m.addduration_sec = nil
	m.clearedFields[content.FieldDurationSec] = struct{}{}
}

// DurationSecCleared returns if the "duration_sec" field was cleared in this mutation.
func (m *ContentMutation) DurationSecCleared() bool {
	_, ok := m.clearedFields[content.FieldDurationSec]
	return ok
}

// ResetDurationSec resets all changes to the "duration_sec" field.
func (m *ContentMutation) ResetDurationSec() {
	m.duration_sec = nil
	m.addduration_sec = nil
	delete(m.clearedFields, content.FieldDurationSec)
}

// SetViewCount sets the "view_count" field.
func (m *ContentMutation) SetViewCount(i int64) {
	m.view_count = &i
	m.addview_count = nil
}

// ViewCount returns the value of the "view_count" field in the mutation.
func (m *ContentMutation) ViewCount() (r int64, exists bool) {
	v := m.view_count
	if v == nil {
		return
	}
	return *v, true
}

// OldViewCount returns the old "view_count" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldViewCount(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldViewCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldViewCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldViewCount: %w", err)
	}
	return oldValue.ViewCount, nil
}

// AddViewCount adds i to the "view_count" field.
func (m *ContentMutation) AddViewCount(i int64) {
	if m.addview_count != nil {
		*m.addview_count += i
	} else {
		m.addview_count = &i
	}
}

// AddedViewCount returns the value that was added to the "view_count" field in this mutation.
func (m *ContentMutation) AddedViewCount() (r int64, exists bool) {
	v := m.addview_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearViewCount clears the value of the "view_count" field.
func (m *ContentMutation) ClearViewCount() {
	m.view_count = nil
	m.addview_count = nil
	m.clearedFields[content.FieldViewCount] = struct{}{}
}

// ViewCountCleared returns if the "view_count" field was cleared in this mutation.
func (m *ContentMutation) ViewCountCleared() bool {
	_, ok := m.clearedFields[content.FieldViewCount]
	return ok
}

// ResetViewCount resets all changes to the "view_count" field.
func (m *ContentMutation) ResetViewCount() {
	m.view_count = nil
	m.addview_count = nil
	delete(m.clearedFields, content.FieldViewCount)
}

// SetThumbnail sets the "thumbnail" field.
func (m *ContentMutation) SetThumbnail(s string) {
	m.thumbnail = &s
}

// Thumbnail returns the value of the "thumbnail" field in the mutation.
func (m *ContentMutation) Thumbnail() (r string, exists bool) {
	v := m.thumbnail
	if v == nil {
		return
	}
	return *v, true
}

// OldThumbnail returns the old "thumbnail" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldThumbnail(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldThumbnail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldThumbnail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldThumbnail: %w", err)
	}
	return oldValue.Thumbnail, nil
}

// ClearThumbnail clears the value of the "thumbnail" field.
func (m *ContentMutation) ClearThumbnail() {
	m.thumbnail = nil
	m.clearedFields[content.FieldThumbnail] = struct{}{}
}

// ThumbnailCleared returns if the "thumbnail" field was cleared in this mutation.
func (m *ContentMutation) ThumbnailCleared() bool {
	_, ok := m.clearedFields[content.FieldThumbnail]
	return ok
}

// ResetThumbnail resets all changes to the "thumbnail" field.
func (m *ContentMutation) ResetThumbnail() {
	m.thumbnail = nil
	delete(m.clearedFields, content.FieldThumbnail)
}

// SetCanonicalURL sets the "canonical_url" field.
func (m *ContentMutation) SetCanonicalURL(s string) {
	m.canonical_url = &s
}

// CanonicalURL returns the value of the "canonical_url" field in the mutation.
func (m *ContentMutation) CanonicalURL() (r string, exists bool) {
	v := m.canonical_url
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalURL returns the old "canonical_url" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldCanonicalURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalURL: %w", err)
	}
	return oldValue.CanonicalURL, nil
}

// ClearCanonicalURL clears the value of the "canonical_url" field.
func (m *ContentMutation) ClearCanonicalURL() {
	m.canonical_url = nil
	m.clearedFields[content.FieldCanonicalURL] = struct{}{}
}

// CanonicalURLCleared returns if the "canonical_url" field was cleared in this mutation.
func (m *ContentMutation) CanonicalURLCleared() bool {
	_, ok := m.clearedFields[content.FieldCanonicalURL]
	return ok
}

// ResetCanonicalURL resets all changes to the "canonical_url" field.
func (m *ContentMutation) ResetCanonicalURL() {
	m.canonical_url = nil
	delete(m.clearedFields, content.FieldCanonicalURL)
}

// SetExpectedSegmentCount sets the "expected_segment_count" field.
func (m *ContentMutation) SetExpectedSegmentCount(i int) {
	m.expected_segment_count = &i
	m.addexpected_segment_count = nil
}

// ExpectedSegmentCount returns the value of the "expected_segment_count" field in the mutation.
func (m *ContentMutation) ExpectedSegmentCount() (r int, exists bool) {
	v := m.expected_segment_count
	if v == nil {
		return
	}
	return *v, true
}

// OldExpectedSegmentCount returns the old "expected_segment_count" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldExpectedSegmentCount(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpectedSegmentCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpectedSegmentCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpectedSegmentCount: %w", err)
	}
	return oldValue.ExpectedSegmentCount, nil
}

// AddExpectedSegmentCount adds i to the "expected_segment_count" field.
func (m *ContentMutation) AddExpectedSegmentCount(i int) {
	if m.addexpected_segment_count != nil {
		*m.addexpected_segment_count += i
	} else {
		m.addexpected_segment_count = &i
	}
}

// AddedExpectedSegmentCount returns the value that was added to the "expected_segment_count" field in this mutation.
func (m *ContentMutation) AddedExpectedSegmentCount() (r int, exists bool) {
	v := m.addexpected_segment_count
	if v == nil {
		return
	}
	return *v, true
}

// ClearExpectedSegmentCount clears the value of the "expected_segment_count" field.
func (m *ContentMutation) ClearExpectedSegmentCount() {
	m.expected_segment_count = nil
	m.addexpected_segment_count = nil
	m.clearedFields[content.FieldExpectedSegmentCount] = struct{}{}
}

// ExpectedSegmentCountCleared returns if the "expected_segment_count" field was cleared in this mutation.
func (m *ContentMutation) ExpectedSegmentCountCleared() bool {
	_, ok := m.clearedFields[content.FieldExpectedSegmentCount]
	return ok
}

// ResetExpectedSegmentCount resets all changes to the "expected_segment_count" field.
func (m *ContentMutation) ResetExpectedSegmentCount() {
	m.expected_segment_count = nil
	m.addexpected_segment_count = nil
	delete(m.clearedFields, content.FieldExpectedSegmentCount)
}

// SetState sets the "state" field.
func (m *ContentMutation) SetState(c content.State) {
	m.state = &c
}

// State returns the value of the "state" field in the mutation.
func (m *ContentMutation) State() (r content.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldState(ctx context.Context) (v content.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *ContentMutation) ResetState() {
	m.state = nil
}

// SetCombinedAnalysis sets the "combined_analysis" field.
func (m *ContentMutation) SetCombinedAnalysis(value map[string]interface{}) {
	m.combined_analysis = &value
}

// CombinedAnalysis returns the value of the "combined_analysis" field in the mutation.
func (m *ContentMutation) CombinedAnalysis() (r map[string]interface{}, exists bool) {
	v := m.combined_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldCombinedAnalysis returns the old "combined_analysis" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldCombinedAnalysis(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCombinedAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCombinedAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCombinedAnalysis: %w", err)
	}
	return oldValue.CombinedAnalysis, nil
}

// ClearCombinedAnalysis clears the value of the "combined_analysis" field.
func (m *ContentMutation) ClearCombinedAnalysis() {
	m.combined_analysis = nil
	m.clearedFields[content.FieldCombinedAnalysis] = struct{}{}
}

// CombinedAnalysisCleared returns if the "combined_analysis" field was cleared in this mutation.
func (m *ContentMutation) CombinedAnalysisCleared() bool {
	_, ok := m.clearedFields[content.FieldCombinedAnalysis]
	return ok
}

// ResetCombinedAnalysis resets all changes to the "combined_analysis" field.
func (m *ContentMutation) ResetCombinedAnalysis() {
	m.combined_analysis = nil
	delete(m.clearedFields, content.FieldCombinedAnalysis)
}

// SetModelsUsed sets the "models_used" field.
func (m *ContentMutation) SetModelsUsed(s []string) {
	m.models_used = &s
	m.appendmodels_used = nil
}

// ModelsUsed returns the value of the "models_used" field in the mutation.
func (m *ContentMutation) ModelsUsed() (r []string, exists bool) {
	v := m.models_used
	if v == nil {
		return
	}
	return *v, true
}

// OldModelsUsed returns the old "models_used" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldModelsUsed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelsUsed: %w", err)
	}
	return oldValue.ModelsUsed, nil
}

// AppendModelsUsed adds s to the "models_used" field.
func (m *ContentMutation) AppendModelsUsed(s []string) {
	m.appendmodels_used = append(m.appendmodels_used, s...)
}

// AppendedModelsUsed returns the list of values that were appended to the "models_used" field in this mutation.
func (m *ContentMutation) AppendedModelsUsed() ([]string, bool) {
	if len(m.appendmodels_used) == 0 {
		return nil, false
	}
	return m.appendmodels_used, true
}

// ClearModelsUsed clears the value of the "models_used" field.
func (m *ContentMutation) ClearModelsUsed() {
	m.models_used = nil
	m.appendmodels_used = nil
	m.clearedFields[content.FieldModelsUsed] = struct{}{}
}

// ModelsUsedCleared returns if the "models_used" field was cleared in this mutation.
func (m *ContentMutation) ModelsUsedCleared() bool {
	_, ok := m.clearedFields[content.FieldModelsUsed]
	return ok
}

// ResetModelsUsed resets all changes to the "models_used" field.
func (m *ContentMutation) ResetModelsUsed() {
	m.models_used = nil
	m.appendmodels_used = nil
	delete(m.clearedFields, content.FieldModelsUsed)
}

// SetPromptVersion sets the "prompt_version" field.
func (m *ContentMutation) SetPromptVersion(s string) {
	m.prompt_version = &s
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *ContentMutation) PromptVersion() (r string, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldPromptVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (m *ContentMutation) ClearPromptVersion() {
	m.prompt_version = nil
	m.clearedFields[content.FieldPromptVersion] = struct{}{}
}

// PromptVersionCleared returns if the "prompt_version" field was cleared in this mutation.
func (m *ContentMutation) PromptVersionCleared() bool {
	_, ok := m.clearedFields[content.FieldPromptVersion]
	return ok
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *ContentMutation) ResetPromptVersion() {
	m.prompt_version = nil
	delete(m.clearedFields, content.FieldPromptVersion)
}

// SetCombinedAt sets the "combined_at" field.
func (m *ContentMutation) SetCombinedAt(t time.Time) {
	m.combined_at = &t
}

// CombinedAt returns the value of the "combined_at" field in the mutation.
func (m *ContentMutation) CombinedAt() (r time.Time, exists bool) {
	v := m.combined_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCombinedAt returns the old "combined_at" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldCombinedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCombinedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCombinedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCombinedAt: %w", err)
	}
	return oldValue.CombinedAt, nil
}

// ClearCombinedAt clears the value of the "combined_at" field.
func (m *ContentMutation) ClearCombinedAt() {
	m.combined_at = nil
	m.clearedFields[content.FieldCombinedAt] = struct{}{}
}

// CombinedAtCleared returns if the "combined_at" field was cleared in this mutation.
func (m *ContentMutation) CombinedAtCleared() bool {
	_, ok := m.clearedFields[content.FieldCombinedAt]
	return ok
}

// ResetCombinedAt resets all changes to the "combined_at" field.
func (m *ContentMutation) ResetCombinedAt() {
	m.combined_at = nil
	delete(m.clearedFields, content.FieldCombinedAt)
}

// SetLastError sets the "last_error" field.
func (m *ContentMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *ContentMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *ContentMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[content.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *ContentMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[content.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *ContentMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, content.FieldLastError)
}

// SetStatistics sets the "statistics" field.
func (m *ContentMutation) SetStatistics(value []map[string]interface{}) {
	m.statistics = &value
	m.appendstatistics = nil
}

// Statistics returns the value of the "statistics" field in the mutation.
func (m *ContentMutation) Statistics() (r []map[string]interface{}, exists bool) {
	v := m.statistics
	if v == nil {
		return
	}
	return *v, true
}

// OldStatistics returns the old "statistics" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldStatistics(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatistics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatistics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatistics: %w", err)
	}
	return oldValue.Statistics, nil
}

// AppendStatistics adds value to the "statistics" field.
func (m *ContentMutation) AppendStatistics(value []map[string]interface{}) {
	m.appendstatistics = append(m.appendstatistics, value...)
}

// AppendedStatistics returns the list of values that were appended to the "statistics" field in this mutation.
func (m *ContentMutation) AppendedStatistics() ([]map[string]interface{}, bool) {
	if len(m.appendstatistics) == 0 {
		return nil, false
	}
	return m.appendstatistics, true
}

// ClearStatistics clears the value of the "statistics" field.
func (m *ContentMutation) ClearStatistics() {
	m.statistics = nil
	m.appendstatistics = nil
	m.clearedFields[content.FieldStatistics] = struct{}{}
}

// StatisticsCleared returns if the "statistics" field was cleared in this mutation.
func (m *ContentMutation) StatisticsCleared() bool {
	_, ok := m.clearedFields[content.FieldStatistics]
	return ok
}

// ResetStatistics resets all changes to the "statistics" field.
func (m *ContentMutation) ResetStatistics() {
	m.statistics = nil
	m.appendstatistics = nil
	delete(m.clearedFields, content.FieldStatistics)
}

// SetCreatedAt sets the "created_at" field.
func (m *ContentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ContentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ContentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Content entity.
// If the Content object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ContentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearChannel clears the "channel" edge to the Channel entity.
func (m *ContentMutation) ClearChannel() {
	m.clearedchannel = true
	m.clearedFields[content.FieldChannelID] = struct{}{}
}

// ChannelCleared reports if the "channel" edge to the Channel entity was cleared.
func (m *ContentMutation) ChannelCleared() bool {
	return m.clearedchannel
}

// ChannelIDs returns the "channel" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ChannelID instead. It exists only for internal usage by the builders.
func (m *ContentMutation) ChannelIDs() (ids []string) {
	if id := m.channel; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetChannel resets all changes to the "channel" edge.
func (m *ContentMutation) ResetChannel() {
	m.channel = nil
	m.clearedchannel = false
}

// AddSegmentIDs adds the "segments" edge to the Segment entity by ids.
func (m *ContentMutation) AddSegmentIDs(ids ...string) {
	if m.segments == nil {
		m.segments = make(map[string]struct{})
	}
	for i := range ids {
		m.segments[ids[i]] = struct{}{}
	}
}

// ClearSegments clears the "segments" edge to the Segment entity.
func (m *ContentMutation) ClearSegments() {
	m.clearedsegments = true
}

// SegmentsCleared reports if the "segments" edge to the Segment entity was cleared.
func (m *ContentMutation) SegmentsCleared() bool {
	return m.clearedsegments
}

// RemoveSegmentIDs removes the "segments" edge to the Segment entity by IDs.
func (m *ContentMutation) RemoveSegmentIDs(ids ...string) {
	if m.removedsegments == nil {
		m.removedsegments = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.segments, ids[i])
		m.removedsegments[ids[i]] = struct{}{}
	}
}

// RemovedSegments returns the removed IDs of the "segments" edge to the Segment entity.
func (m *ContentMutation) RemovedSegmentsIDs() (ids []string) {
	for id := range m.removedsegments {
		ids = append(ids, id)
	}
	return
}

// SegmentsIDs returns the "segments" edge IDs in the mutation.
func (m *ContentMutation) SegmentsIDs() (ids []string) {
	for id := range m.segments {
		ids = append(ids, id)
	}
	return
}

// ResetSegments resets all changes to the "segments" edge.
func (m *ContentMutation) ResetSegments() {
	m.segments = nil
	m.clearedsegments = false
	m.removedsegments = nil
}

// Where appends a list predicates to the ContentMutation builder.
func (m *ContentMutation) Where(ps ...predicate.Content) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Content, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Content).
func (m *ContentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContentMutation) Fields() []string {
	fields := make([]string, 0, 19)
	if m.channel != nil {
		fields = append(fields, content.FieldChannelID)
	}
	if m.external_video_id != nil {
		fields = append(fields, content.FieldExternalVideoID)
	}
	if m.title != nil {
		fields = append(fields, content.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, content.FieldDescription)
	}
	if m.published_at != nil {
		fields = append(fields, content.FieldPublishedAt)
	}
	if m.duration_sec != nil {
		fields = append(fields, content.FieldDurationSec)
	}
	if m.view_count != nil {
		fields = append(fields, content.FieldViewCount)
	}
	if m.thumbnail != nil {
		fields = append(fields, content.FieldThumbnail)
	}
	if m.canonical_url != nil {
		fields = append(fields, content.FieldCanonicalURL)
	}
	if m.expected_segment_count != nil {
		fields = append(fields, content.FieldExpectedSegmentCount)
	}
	if m.state != nil {
		fields = append(fields, content.FieldState)
	}
	if m.combined_analysis != nil {
		fields = append(fields, content.FieldCombinedAnalysis)
	}
	if m.models_used != nil {
		fields = append(fields, content.FieldModelsUsed)
	}
	if m.prompt_version != nil {
		fields = append(fields, content.FieldPromptVersion)
	}
	if m.combined_at != nil {
		fields = append(fields, content.FieldCombinedAt)
	}
	if m.last_error != nil {
		fields = append(fields, content.FieldLastError)
	}
	if m.statistics != nil {
		fields = append(fields, content.FieldStatistics)
	}
	if m.created_at != nil {
		fields = append(fields, content.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, content.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case content.FieldChannelID:
		return m.ChannelID()
	case content.FieldExternalVideoID:
		return m.ExternalVideoID()
	case content.FieldTitle:
		return m.Title()
	case content.FieldDescription:
		return m.Description()
	case content.FieldPublishedAt:
		return m.PublishedAt()
	case content.FieldDurationSec:
		return m.DurationSec()
	case content.FieldViewCount:
		return m.ViewCount()
	case content.FieldThumbnail:
		return m.Thumbnail()
	case content.FieldCanonicalURL:
		return m.CanonicalURL()
	case content.FieldExpectedSegmentCount:
		return m.ExpectedSegmentCount()
	case content.FieldState:
		return m.State()
	case content.FieldCombinedAnalysis:
		return m.CombinedAnalysis()
	case content.FieldModelsUsed:
		return m.ModelsUsed()
	case content.FieldPromptVersion:
		return m.PromptVersion()
	case content.FieldCombinedAt:
		return m.CombinedAt()
	case content.FieldLastError:
		return m.LastError()
	case content.FieldStatistics:
		return m.Statistics()
	case content.FieldCreatedAt:
		return m.CreatedAt()
	case content.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case content.FieldChannelID:
		return m.OldChannelID(ctx)
	case content.FieldExternalVideoID:
		return m.OldExternalVideoID(ctx)
	case content.FieldTitle:
		return m.OldTitle(ctx)
	case content.FieldDescription:
		return m.OldDescription(ctx)
	case content.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case content.FieldDurationSec:
		return m.OldDurationSec(ctx)
	case content.FieldViewCount:
		return m.OldViewCount(ctx)
	case content.FieldThumbnail:
		return m.OldThumbnail(ctx)
	case content.FieldCanonicalURL:
		return m.OldCanonicalURL(ctx)
	case content.FieldExpectedSegmentCount:
		return m.OldExpectedSegmentCount(ctx)
	case content.FieldState:
		return m.OldState(ctx)
	case content.FieldCombinedAnalysis:
		return m.OldCombinedAnalysis(ctx)
	case content.FieldModelsUsed:
		return m.OldModelsUsed(ctx)
	case content.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case content.FieldCombinedAt:
		return m.OldCombinedAt(ctx)
	case content.FieldLastError:
		return m.OldLastError(ctx)
	case content.FieldStatistics:
		return m.OldStatistics(ctx)
	case content.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case content.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Content field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case content.FieldChannelID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannelID(v)
		return nil
	case content.FieldExternalVideoID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalVideoID(v)
		return nil
	case content.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case content.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case content.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case content.FieldDurationSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSec(v)
		return nil
	case content.FieldViewCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetViewCount(v)
		return nil
	case content.FieldThumbnail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetThumbnail(v)
		return nil
	case content.FieldCanonicalURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalURL(v)
		return nil
	case content.FieldExpectedSegmentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpectedSegmentCount(v)
		return nil
	case content.FieldState:
		v, ok := value.(content.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case content.FieldCombinedAnalysis:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCombinedAnalysis(v)
		return nil
	case content.FieldModelsUsed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelsUsed(v)
		return nil
	case content.FieldPromptVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case content.FieldCombinedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCombinedAt(v)
		return nil
	case content.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case content.FieldStatistics:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatistics(v)
		return nil
	case content.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case content.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Content field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContentMutation) AddedFields() []string {
	var fields []string
	if m.addduration_sec != nil {
		fields = append(fields, content.FieldDurationSec)
	}
	if m.addview_count != nil {
		fields = append(fields, content.FieldViewCount)
	}
	if m.addexpected_segment_count != nil {
		fields = append(fields, content.FieldExpectedSegmentCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case content.FieldDurationSec:
		return m.AddedDurationSec()
	case content.FieldViewCount:
		return m.AddedViewCount()
	case content.FieldExpectedSegmentCount:
		return m.AddedExpectedSegmentCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case content.FieldDurationSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSec(v)
		return nil
	case content.FieldViewCount:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddViewCount(v)
		return nil
	case content.FieldExpectedSegmentCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExpectedSegmentCount(v)
		return nil
	}
	return fmt.Errorf("unknown Content numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(content.FieldDescription) {
		fields = append(fields, content.FieldDescription)
	}
	if m.FieldCleared(content.FieldPublishedAt) {
		fields = append(fields, content.FieldPublishedAt)
	}
	if m.FieldCleared(content.FieldDurationSec) {
		fields = append(fields, content.FieldDurationSec)
	}
	if m.FieldCleared(content.FieldViewCount) {
		fields = append(fields, content.FieldViewCount)
	}
	if m.FieldCleared(content.FieldThumbnail) {
		fields = append(fields, content.FieldThumbnail)
	}
	if m.FieldCleared(content.FieldCanonicalURL) {
		fields = append(fields, content.FieldCanonicalURL)
	}
	if m.FieldCleared(content.FieldExpectedSegmentCount) {
		fields = append(fields, content.FieldExpectedSegmentCount)
	}
	if m.FieldCleared(content.FieldCombinedAnalysis) {
		fields = append(fields, content.FieldCombinedAnalysis)
	}
	if m.FieldCleared(content.FieldModelsUsed) {
		fields = append(fields, content.FieldModelsUsed)
	}
	if m.FieldCleared(content.FieldPromptVersion) {
		fields = append(fields, content.FieldPromptVersion)
	}
	if m.FieldCleared(content.FieldCombinedAt) {
		fields = append(fields, content.FieldCombinedAt)
	}
	if m.FieldCleared(content.FieldLastError) {
		fields = append(fields, content.FieldLastError)
	}
	if m.FieldCleared(content.FieldStatistics) {
		fields = append(fields, content.FieldStatistics)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContentMutation) ClearField(name string) error {
	switch name {
	case content.FieldDescription:
		m.ClearDescription()
		return nil
	case content.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case content.FieldDurationSec:
		m.ClearDurationSec()
		return nil
	case content.FieldViewCount:
		m.ClearViewCount()
		return nil
	case content.FieldThumbnail:
		m.ClearThumbnail()
		return nil
	case content.FieldCanonicalURL:
		m.ClearCanonicalURL()
		return nil
	case content.FieldExpectedSegmentCount:
		m.ClearExpectedSegmentCount()
		return nil
	case content.FieldCombinedAnalysis:
		m.ClearCombinedAnalysis()
		return nil
	case content.FieldModelsUsed:
		m.ClearModelsUsed()
		return nil
	case content.FieldPromptVersion:
		m.ClearPromptVersion()
		return nil
	case content.FieldCombinedAt:
		m.ClearCombinedAt()
		return nil
	case content.FieldLastError:
		m.ClearLastError()
		return nil
	case content.FieldStatistics:
		m.ClearStatistics()
		return nil
	}
	return fmt.Errorf("unknown Content nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContentMutation) ResetField(name string) error {
	switch name {
	case content.FieldChannelID:
		m.ResetChannelID()
		return nil
	case content.FieldExternalVideoID:
		m.ResetExternalVideoID()
		return nil
	case content.FieldTitle:
		m.ResetTitle()
		return nil
	case content.FieldDescription:
		m.ResetDescription()
		return nil
	case content.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case content.FieldDurationSec:
		m.ResetDurationSec()
		return nil
	case content.FieldViewCount:
		m.ResetViewCount()
		return nil
	case content.FieldThumbnail:
		m.ResetThumbnail()
		return nil
	case content.FieldCanonicalURL:
		m.ResetCanonicalURL()
		return nil
	case content.FieldExpectedSegmentCount:
		m.ResetExpectedSegmentCount()
		return nil
	case content.FieldState:
		m.ResetState()
		return nil
	case content.FieldCombinedAnalysis:
		m.ResetCombinedAnalysis()
		return nil
	case content.FieldModelsUsed:
		m.ResetModelsUsed()
		return nil
	case content.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case content.FieldCombinedAt:
		m.ResetCombinedAt()
		return nil
	case content.FieldLastError:
		m.ResetLastError()
		return nil
	case content.FieldStatistics:
		m.ResetStatistics()
		return nil
	case content.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case content.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Content field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContentMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.channel != nil {
		edges = append(edges, content.EdgeChannel)
	}
	if m.segments != nil {
		edges = append(edges, content.EdgeSegments)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case content.EdgeChannel:
		if id := m.channel; id != nil {
			return []ent.Value{*id}
		}
	case content.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.segments))
		for id := range m.segments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedsegments != nil {
		edges = append(edges, content.EdgeSegments)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case content.EdgeSegments:
		ids := make([]ent.Value, 0, len(m.removedsegments))
		for id := range m.removedsegments {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedchannel {
		edges = append(edges, content.EdgeChannel)
	}
	if m.clearedsegments {
		edges = append(edges, content.EdgeSegments)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContentMutation) EdgeCleared(name string) bool {
	switch name {
	case content.EdgeChannel:
		return m.clearedchannel
	case content.EdgeSegments:
		return m.clearedsegments
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContentMutation) ClearEdge(name string) error {
	switch name {
	case content.EdgeChannel:
		m.ClearChannel()
		return nil
	}
	return fmt.Errorf("unknown Content unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContentMutation) ResetEdge(name string) error {
	switch name {
	case content.EdgeChannel:
		m.ResetChannel()
		return nil
	case content.EdgeSegments:
		m.ResetSegments()
		return nil
	}
	return fmt.Errorf("unknown Content edge %s", name)
}

// CronJobMutation represents an operation that mutates the CronJob nodes in the graph.
type CronJobMutation struct {
	config
	op               Op
	typ              string
	id               *string
	stable_id        *string
	queue            *string
	name             *string
	payload          *map[string]interface{}
	cron_pattern     *string
	next_run_at      *time.Time
	last_enqueued_at *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*CronJob, error)
	predicates       []predicate.CronJob
}

var _ ent.Mutation = (*CronJobMutation)(nil)

// cronjobOption allows management of the mutation configuration using functional options.
type cronjobOption func(*CronJobMutation)

// newCronJobMutation creates new mutation for the CronJob entity.
func newCronJobMutation(c config, op Op, opts ...cronjobOption) *CronJobMutation {
	m := &CronJobMutation{
		config:        c,
		op:            op,
		typ:           TypeCronJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCronJobID sets the ID field of the mutation.
func withCronJobID(id string) cronjobOption {
	return func(m *CronJobMutation) {
		var (
			err   error
			once  sync.Once
			value *CronJob
		)
		m.oldValue = func(ctx context.Context) (*CronJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CronJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCronJob sets the old CronJob of the mutation.
func withCronJob(node *CronJob) cronjobOption {
	return func(m *CronJobMutation) {
		m.oldValue = func(context.Context) (*CronJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CronJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CronJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CronJob entities.
func (m *CronJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CronJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CronJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CronJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetStableID sets the "stable_id" field.
func (m *CronJobMutation) SetStableID(s string) {
	m.stable_id = &s
}

// StableID returns the value of the "stable_id" field in the mutation.
func (m *CronJobMutation) StableID() (r string, exists bool) {
	v := m.stable_id
	if v == nil {
		return
	}
	return *v, true
}

// OldStableID returns the old "stable_id" field's value of the CronJob entity.
// If the CronJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobMutation) OldStableID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStableID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStableID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStableID: %w", err)
	}
	return oldValue.StableID, nil
}

// ResetStableID resets all changes to the "stable_id" field.
func (m *CronJobMutation) ResetStableID() {
	m.stable_id = nil
}

// SetQueue sets the "queue" field.
func (m *CronJobMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *CronJobMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the CronJob entity.
// If the CronJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *CronJobMutation) ResetQueue() {
	m.queue = nil
}

// SetName sets the "name" field.
func (m *CronJobMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *CronJobMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the CronJob entity.
// If the CronJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *CronJobMutation) ResetName() {
	m.name = nil
}

// SetPayload sets the "payload" field.
func (m *CronJobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *CronJobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the CronJob entity.
// If the CronJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *CronJobMutation) ResetPayload() {
	m.payload = nil
}

// SetCronPattern sets the "cron_pattern" field.
func (m *CronJobMutation) SetCronPattern(s string) {
	m.cron_pattern = &s
}

// CronPattern returns the value of the "cron_pattern" field in the mutation.
func (m *CronJobMutation) CronPattern() (r string, exists bool) {
	v := m.cron_pattern
	if v == nil {
		return
	}
	return *v, true
}

// OldCronPattern returns the old "cron_pattern" field's value of the CronJob entity.
// If the CronJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobMutation) OldCronPattern(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCronPattern is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCronPattern requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCronPattern: %w", err)
	}
	return oldValue.CronPattern, nil
}

// ResetCronPattern resets all changes to the "cron_pattern" field.
func (m *CronJobMutation) ResetCronPattern() {
	m.cron_pattern = nil
}

// SetNextRunAt sets the "next_run_at" field.
func (m *CronJobMutation) SetNextRunAt(t time.Time) {
	m.next_run_at = &t
}

// NextRunAt returns the value of the "next_run_at" field in the mutation.
func (m *CronJobMutation) NextRunAt() (r time.Time, exists bool) {
	v := m.next_run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextRunAt returns the old "next_run_at" field's value of the CronJob entity.
// If the CronJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobMutation) OldNextRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextRunAt: %w", err)
	}
	return oldValue.NextRunAt, nil
}

// ResetNextRunAt resets all changes to the "next_run_at" field.
func (m *CronJobMutation) ResetNextRunAt() {
	m.next_run_at = nil
}

// SetLastEnqueuedAt sets the "last_enqueued_at" field.
func (m *CronJobMutation) SetLastEnqueuedAt(t time.Time) {
	m.last_enqueued_at = &t
}

// LastEnqueuedAt returns the value of the "last_enqueued_at" field in the mutation.
func (m *CronJobMutation) LastEnqueuedAt() (r time.Time, exists bool) {
	v := m.last_enqueued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastEnqueuedAt returns the old "last_enqueued_at" field's value of the CronJob entity.
// If the CronJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobMutation) OldLastEnqueuedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastEnqueuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastEnqueuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastEnqueuedAt: %w", err)
	}
	return oldValue.LastEnqueuedAt, nil
}

// ClearLastEnqueuedAt clears the value of the "last_enqueued_at" field.
func (m *CronJobMutation) ClearLastEnqueuedAt() {
	m.last_enqueued_at = nil
	m.clearedFields[cronjob.FieldLastEnqueuedAt] = struct{}{}
}

// LastEnqueuedAtCleared returns if the "last_enqueued_at" field was cleared in this mutation.
func (m *CronJobMutation) LastEnqueuedAtCleared() bool {
	_, ok := m.clearedFields[cronjob.FieldLastEnqueuedAt]
	return ok
}

// ResetLastEnqueuedAt resets all changes to the "last_enqueued_at" field.
func (m *CronJobMutation) ResetLastEnqueuedAt() {
	m.last_enqueued_at = nil
	delete(m.clearedFields, cronjob.FieldLastEnqueuedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *CronJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CronJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CronJob entity.
// If the CronJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CronJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CronJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CronJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CronJob entity.
// If the CronJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CronJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CronJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the CronJobMutation builder.
func (m *CronJobMutation) Where(ps ...predicate.CronJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CronJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CronJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CronJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CronJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CronJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CronJob).
func (m *CronJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CronJobMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.stable_id != nil {
		fields = append(fields, cronjob.FieldStableID)
	}
	if m.queue != nil {
		fields = append(fields, cronjob.FieldQueue)
	}
	if m.name != nil {
		fields = append(fields, cronjob.FieldName)
	}
	if m.payload != nil {
		fields = append(fields, cronjob.FieldPayload)
	}
	if m.cron_pattern != nil {
		fields = append(fields, cronjob.FieldCronPattern)
	}
	if m.next_run_at != nil {
		fields = append(fields, cronjob.FieldNextRunAt)
	}
	if m.last_enqueued_at != nil {
		fields = append(fields, cronjob.FieldLastEnqueuedAt)
	}
	if m.created_at != nil {
		fields = append(fields, cronjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, cronjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CronJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case cronjob.FieldStableID:
		return m.StableID()
	case cronjob.FieldQueue:
		return m.Queue()
	case cronjob.FieldName:
		return m.Name()
	case cronjob.FieldPayload:
		return m.Payload()
	case cronjob.FieldCronPattern:
		return m.CronPattern()
	case cronjob.FieldNextRunAt:
		return m.NextRunAt()
	case cronjob.FieldLastEnqueuedAt:
		return m.LastEnqueuedAt()
	case cronjob.FieldCreatedAt:
		return m.CreatedAt()
	case cronjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CronJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case cronjob.FieldStableID:
		return m.OldStableID(ctx)
	case cronjob.FieldQueue:
		return m.OldQueue(ctx)
	case cronjob.FieldName:
		return m.OldName(ctx)
	case cronjob.FieldPayload:
		return m.OldPayload(ctx)
	case cronjob.FieldCronPattern:
		return m.OldCronPattern(ctx)
	case cronjob.FieldNextRunAt:
		return m.OldNextRunAt(ctx)
	case cronjob.FieldLastEnqueuedAt:
		return m.OldLastEnqueuedAt(ctx)
	case cronjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case cronjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CronJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CronJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case cronjob.FieldStableID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStableID(v)
		return nil
	case cronjob.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case cronjob.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case cronjob.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case cronjob.FieldCronPattern:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCronPattern(v)
		return nil
	case cronjob.FieldNextRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextRunAt(v)
		return nil
	case cronjob.FieldLastEnqueuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastEnqueuedAt(v)
		return nil
	case cronjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case cronjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CronJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CronJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CronJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CronJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CronJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CronJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(cronjob.FieldLastEnqueuedAt) {
		fields = append(fields, cronjob.FieldLastEnqueuedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CronJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CronJobMutation) ClearField(name string) error {
	switch name {
	case cronjob.FieldLastEnqueuedAt:
		m.ClearLastEnqueuedAt()
		return nil
	}
	return fmt.Errorf("unknown CronJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CronJobMutation) ResetField(name string) error {
	switch name {
	case cronjob.FieldStableID:
		m.ResetStableID()
		return nil
	case cronjob.FieldQueue:
		m.ResetQueue()
		return nil
	case cronjob.FieldName:
		m.ResetName()
		return nil
	case cronjob.FieldPayload:
		m.ResetPayload()
		return nil
	case cronjob.FieldCronPattern:
		m.ResetCronPattern()
		return nil
	case cronjob.FieldNextRunAt:
		m.ResetNextRunAt()
		return nil
	case cronjob.FieldLastEnqueuedAt:
		m.ResetLastEnqueuedAt()
		return nil
	case cronjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case cronjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CronJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CronJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CronJobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CronJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CronJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CronJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CronJobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CronJobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CronJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CronJobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CronJob edge %s", name)
}

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	queue              *string
	name               *string
	payload            *map[string]interface{}
	state              *job.State
	job_key            *string
	priority           *int
	addpriority        *int
	run_at             *time.Time
	attempts           *int
	addattempts        *int
	max_attempts       *int
	addmax_attempts    *int
	backoff_base_ms    *int64
	addbackoff_base_ms *int64
	remove_on_complete *bool
	stalled_count      *int
	addstalled_count   *int
	last_error         *string
	claimed_by         *string
	heartbeat_at       *time.Time
	started_at         *time.Time
	finished_at        *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Job, error)
	predicates         []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetQueue sets the "queue" field.
func (m *JobMutation) SetQueue(s string) {
	m.queue = &s
}

// Queue returns the value of the "queue" field in the mutation.
func (m *JobMutation) Queue() (r string, exists bool) {
	v := m.queue
	if v == nil {
		return
	}
	return *v, true
}

// OldQueue returns the old "queue" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldQueue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQueue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQueue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQueue: %w", err)
	}
	return oldValue.Queue, nil
}

// ResetQueue resets all changes to the "queue" field.
func (m *JobMutation) ResetQueue() {
	m.queue = nil
}

// SetName sets the "name" field.
func (m *JobMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *JobMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *JobMutation) ResetName() {
	m.name = nil
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
}

// SetState sets the "state" field.
func (m *JobMutation) SetState(j job.State) {
	m.state = &j
}

// State returns the value of the "state" field in the mutation.
func (m *JobMutation) State() (r job.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldState(ctx context.Context) (v job.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *JobMutation) ResetState() {
	m.state = nil
}

// SetJobKey sets the "job_key" field.
func (m *JobMutation) SetJobKey(s string) {
	m.job_key = &s
}

// JobKey returns the value of the "job_key" field in the mutation.
func (m *JobMutation) JobKey() (r string, exists bool) {
	v := m.job_key
	if v == nil {
		return
	}
	return *v, true
}

// OldJobKey returns the old "job_key" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldJobKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobKey: %w", err)
	}
	return oldValue.JobKey, nil
}

// ClearJobKey clears the value of the "job_key" field.
func (m *JobMutation) ClearJobKey() {
	m.job_key = nil
	m.clearedFields[job.FieldJobKey] = struct{}{}
}

// JobKeyCleared returns if the "job_key" field was cleared in this mutation.
func (m *JobMutation) JobKeyCleared() bool {
	_, ok := m.clearedFields[job.FieldJobKey]
	return ok
}

// ResetJobKey resets all changes to the "job_key" field.
func (m *JobMutation) ResetJobKey() {
	m.job_key = nil
	delete(m.clearedFields, job.FieldJobKey)
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(i int) {
	m.priority = &i
	m.addpriority = nil
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r int, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// AddPriority adds i to the "priority" field.
func (m *JobMutation) AddPriority(i int) {
	if m.addpriority != nil {
		*m.addpriority += i
	} else {
		m.addpriority = &i
	}
}

// AddedPriority returns the value that was added to the "priority" field in this mutation.
func (m *JobMutation) AddedPriority() (r int, exists bool) {
	v := m.addpriority
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
	m.addpriority = nil
}

// SetRunAt sets the "run_at" field.
func (m *JobMutation) SetRunAt(t time.Time) {
	m.run_at = &t
}

// RunAt returns the value of the "run_at" field in the mutation.
func (m *JobMutation) RunAt() (r time.Time, exists bool) {
	v := m.run_at
	if v == nil {
		return
	}
	return *v, true
}

// OldRunAt returns the old "run_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRunAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRunAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRunAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRunAt: %w", err)
	}
	return oldValue.RunAt, nil
}

// ResetRunAt resets all changes to the "run_at" field.
func (m *JobMutation) ResetRunAt() {
	m.run_at = nil
}

// SetAttempts sets the "attempts" field.
func (m *JobMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *JobMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *JobMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *JobMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *JobMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetMaxAttempts sets the "max_attempts" field.
func (m *JobMutation) SetMaxAttempts(i int) {
	m.max_attempts = &i
	m.addmax_attempts = nil
}

// MaxAttempts returns the value of the "max_attempts" field in the mutation.
func (m *JobMutation) MaxAttempts() (r int, exists bool) {
	v := m.max_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxAttempts returns the old "max_attempts" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMaxAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxAttempts: %w", err)
	}
	return oldValue.MaxAttempts, nil
}

// AddMaxAttempts adds i to the "max_attempts" field.
func (m *JobMutation) AddMaxAttempts(i int) {
	if m.addmax_attempts != nil {
		*m.addmax_attempts += i
	} else {
		m.addmax_attempts = &i
	}
}

// AddedMaxAttempts returns the value that was added to the "max_attempts" field in this mutation.
func (m *JobMutation) AddedMaxAttempts() (r int, exists bool) {
	v := m.addmax_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetMaxAttempts resets all changes to the "max_attempts" field.
func (m *JobMutation) ResetMaxAttempts() {
	m.max_attempts = nil
	m.addmax_attempts = nil
}

// SetBackoffBaseMs sets the "backoff_base_ms" field.
func (m *JobMutation) SetBackoffBaseMs(i int64) {
	m.backoff_base_ms = &i
	m.addbackoff_base_ms = nil
}

// BackoffBaseMs returns the value of the "backoff_base_ms" field in the mutation.
func (m *JobMutation) BackoffBaseMs() (r int64, exists bool) {
	v := m.backoff_base_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldBackoffBaseMs returns the old "backoff_base_ms" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldBackoffBaseMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBackoffBaseMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBackoffBaseMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBackoffBaseMs: %w", err)
	}
	return oldValue.BackoffBaseMs, nil
}

// AddBackoffBaseMs adds i to the "backoff_base_ms" field.
func (m *JobMutation) AddBackoffBaseMs(i int64) {
	if m.addbackoff_base_ms != nil {
		*m.addbackoff_base_ms += i
	} else {
		m.addbackoff_base_ms = &i
	}
}

// AddedBackoffBaseMs returns the value that was added to the "backoff_base_ms" field in this mutation.
func (m *JobMutation) AddedBackoffBaseMs() (r int64, exists bool) {
	v := m.addbackoff_base_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetBackoffBaseMs resets all changes to the "backoff_base_ms" field.
func (m *JobMutation) ResetBackoffBaseMs() {
	m.backoff_base_ms = nil
	m.addbackoff_base_ms = nil
}

// SetRemoveOnComplete sets the "remove_on_complete" field.
func (m *JobMutation) SetRemoveOnComplete(b bool) {
	m.remove_on_complete = &b
}

// RemoveOnComplete returns the value of the "remove_on_complete" field in the mutation.
func (m *JobMutation) RemoveOnComplete() (r bool, exists bool) {
	v := m.remove_on_complete
	if v == nil {
		return
	}
	return *v, true
}

// OldRemoveOnComplete returns the old "remove_on_complete" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRemoveOnComplete(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRemoveOnComplete is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRemoveOnComplete requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRemoveOnComplete: %w", err)
	}
	return oldValue.RemoveOnComplete, nil
}

// ResetRemoveOnComplete resets all changes to the "remove_on_complete" field.
func (m *JobMutation) ResetRemoveOnComplete() {
	m.remove_on_complete = nil
}

// SetStalledCount sets the "stalled_count" field.
func (m *JobMutation) SetStalledCount(i int) {
	m.stalled_count = &i
	m.addstalled_count = nil
}

// StalledCount returns the value of the "stalled_count" field in the mutation.
func (m *JobMutation) StalledCount() (r int, exists bool) {
	v := m.stalled_count
	if v == nil {
		return
	}
	return *v, true
}

// OldStalledCount returns the old "stalled_count" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStalledCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStalledCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStalledCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStalledCount: %w", err)
	}
	return oldValue.StalledCount, nil
}

// AddStalledCount adds i to the "stalled_count" field.
func (m *JobMutation) AddStalledCount(i int) {
	if m.addstalled_count != nil {
		*m.addstalled_count += i
	} else {
		m.addstalled_count = &i
	}
}

// AddedStalledCount returns the value that was added to the "stalled_count" field in this mutation.
func (m *JobMutation) AddedStalledCount() (r int, exists bool) {
	v := m.addstalled_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetStalledCount resets all changes to the "stalled_count" field.
func (m *JobMutation) ResetStalledCount() {
	m.stalled_count = nil
	m.addstalled_count = nil
}

// SetLastError sets the "last_error" field.
func (m *JobMutation) SetLastError(s string) {
	m.last_error = &s
}

// LastError returns the value of the "last_error" field in the mutation.
func (m *JobMutation) LastError() (r string, exists bool) {
	v := m.last_error
	if v == nil {
		return
	}
	return *v, true
}

// OldLastError returns the old "last_error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLastError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastError: %w", err)
	}
	return oldValue.LastError, nil
}

// ClearLastError clears the value of the "last_error" field.
func (m *JobMutation) ClearLastError() {
	m.last_error = nil
	m.clearedFields[job.FieldLastError] = struct{}{}
}

// LastErrorCleared returns if the "last_error" field was cleared in this mutation.
func (m *JobMutation) LastErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldLastError]
	return ok
}

// ResetLastError resets all changes to the "last_error" field.
func (m *JobMutation) ResetLastError() {
	m.last_error = nil
	delete(m.clearedFields, job.FieldLastError)
}

// SetClaimedBy sets the "claimed_by" field.
func (m *JobMutation) SetClaimedBy(s string) {
	m.claimed_by = &s
}

// ClaimedBy returns the value of the "claimed_by" field in the mutation.
func (m *JobMutation) ClaimedBy() (r string, exists bool) {
	v := m.claimed_by
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedBy returns the old "claimed_by" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldClaimedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedBy: %w", err)
	}
	return oldValue.ClaimedBy, nil
}

// ClearClaimedBy clears the value of the "claimed_by" field.
func (m *JobMutation) ClearClaimedBy() {
	m.claimed_by = nil
	m.clearedFields[job.FieldClaimedBy] = struct{}{}
}

// ClaimedByCleared returns if the "claimed_by" field was cleared in this mutation.
func (m *JobMutation) ClaimedByCleared() bool {
	_, ok := m.clearedFields[job.FieldClaimedBy]
	return ok
}

// ResetClaimedBy resets all changes to the "claimed_by" field.
func (m *JobMutation) ResetClaimedBy() {
	m.claimed_by = nil
	delete(m.clearedFields, job.FieldClaimedBy)
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (m *JobMutation) SetHeartbeatAt(t time.Time) {
	m.heartbeat_at = &t
}

// HeartbeatAt returns the value of the "heartbeat_at" field in the mutation.
func (m *JobMutation) HeartbeatAt() (r time.Time, exists bool) {
	v := m.heartbeat_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHeartbeatAt returns the old "heartbeat_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldHeartbeatAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHeartbeatAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHeartbeatAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHeartbeatAt: %w", err)
	}
	return oldValue.HeartbeatAt, nil
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (m *JobMutation) ClearHeartbeatAt() {
	m.heartbeat_at = nil
	m.clearedFields[job.FieldHeartbeatAt] = struct{}{}
}

// HeartbeatAtCleared returns if the "heartbeat_at" field was cleared in this mutation.
func (m *JobMutation) HeartbeatAtCleared() bool {
	_, ok := m.clearedFields[job.FieldHeartbeatAt]
	return ok
}

// ResetHeartbeatAt resets all changes to the "heartbeat_at" field.
func (m *JobMutation) ResetHeartbeatAt() {
	m.heartbeat_at = nil
	delete(m.clearedFields, job.FieldHeartbeatAt)
}

// SetStartedAt sets the "started_at" field.
func (m *JobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *JobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *JobMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[job.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *JobMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *JobMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, job.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *JobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *JobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *JobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[job.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *JobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *JobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, job.FieldFinishedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.queue != nil {
		fields = append(fields, job.FieldQueue)
	}
	if m.name != nil {
		fields = append(fields, job.FieldName)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.state != nil {
		fields = append(fields, job.FieldState)
	}
	if m.job_key != nil {
		fields = append(fields, job.FieldJobKey)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.run_at != nil {
		fields = append(fields, job.FieldRunAt)
	}
	if m.attempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.max_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.backoff_base_ms != nil {
		fields = append(fields, job.FieldBackoffBaseMs)
	}
	if m.remove_on_complete != nil {
		fields = append(fields, job.FieldRemoveOnComplete)
	}
	if m.stalled_count != nil {
		fields = append(fields, job.FieldStalledCount)
	}
	if m.last_error != nil {
		fields = append(fields, job.FieldLastError)
	}
	if m.claimed_by != nil {
		fields = append(fields, job.FieldClaimedBy)
	}
	if m.heartbeat_at != nil {
		fields = append(fields, job.FieldHeartbeatAt)
	}
	if m.started_at != nil {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, job.FieldFinishedAt)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldQueue:
		return m.Queue()
	case job.FieldName:
		return m.Name()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldState:
		return m.State()
	case job.FieldJobKey:
		return m.JobKey()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldRunAt:
		return m.RunAt()
	case job.FieldAttempts:
		return m.Attempts()
	case job.FieldMaxAttempts:
		return m.MaxAttempts()
	case job.FieldBackoffBaseMs:
		return m.BackoffBaseMs()
	case job.FieldRemoveOnComplete:
		return m.RemoveOnComplete()
	case job.FieldStalledCount:
		return m.StalledCount()
	case job.FieldLastError:
		return m.LastError()
	case job.FieldClaimedBy:
		return m.ClaimedBy()
	case job.FieldHeartbeatAt:
		return m.HeartbeatAt()
	case job.FieldStartedAt:
		return m.StartedAt()
	case job.FieldFinishedAt:
		return m.FinishedAt()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldQueue:
		return m.OldQueue(ctx)
	case job.FieldName:
		return m.OldName(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldState:
		return m.OldState(ctx)
	case job.FieldJobKey:
		return m.OldJobKey(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldRunAt:
		return m.OldRunAt(ctx)
	case job.FieldAttempts:
		return m.OldAttempts(ctx)
	case job.FieldMaxAttempts:
		return m.OldMaxAttempts(ctx)
	case job.FieldBackoffBaseMs:
		return m.OldBackoffBaseMs(ctx)
	case job.FieldRemoveOnComplete:
		return m.OldRemoveOnComplete(ctx)
	case job.FieldStalledCount:
		return m.OldStalledCount(ctx)
	case job.FieldLastError:
		return m.OldLastError(ctx)
	case job.FieldClaimedBy:
		return m.OldClaimedBy(ctx)
	case job.FieldHeartbeatAt:
		return m.OldHeartbeatAt(ctx)
	case job.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case job.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldQueue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQueue(v)
		return nil
	case job.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldState:
		v, ok := value.(job.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case job.FieldJobKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobKey(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldRunAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRunAt(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxAttempts(v)
		return nil
	case job.FieldBackoffBaseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBackoffBaseMs(v)
		return nil
	case job.FieldRemoveOnComplete:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRemoveOnComplete(v)
		return nil
	case job.FieldStalledCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStalledCount(v)
		return nil
	case job.FieldLastError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastError(v)
		return nil
	case job.FieldClaimedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedBy(v)
		return nil
	case job.FieldHeartbeatAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHeartbeatAt(v)
		return nil
	case job.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case job.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addpriority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.addattempts != nil {
		fields = append(fields, job.FieldAttempts)
	}
	if m.addmax_attempts != nil {
		fields = append(fields, job.FieldMaxAttempts)
	}
	if m.addbackoff_base_ms != nil {
		fields = append(fields, job.FieldBackoffBaseMs)
	}
	if m.addstalled_count != nil {
		fields = append(fields, job.FieldStalledCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldPriority:
		return m.AddedPriority()
	case job.FieldAttempts:
		return m.AddedAttempts()
	case job.FieldMaxAttempts:
		return m.AddedMaxAttempts()
	case job.FieldBackoffBaseMs:
		return m.AddedBackoffBaseMs()
	case job.FieldStalledCount:
		return m.AddedStalledCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldPriority:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriority(v)
		return nil
	case job.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case job.FieldMaxAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxAttempts(v)
		return nil
	case job.FieldBackoffBaseMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBackoffBaseMs(v)
		return nil
	case job.FieldStalledCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStalledCount(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldJobKey) {
		fields = append(fields, job.FieldJobKey)
	}
	if m.FieldCleared(job.FieldLastError) {
		fields = append(fields, job.FieldLastError)
	}
	if m.FieldCleared(job.FieldClaimedBy) {
		fields = append(fields, job.FieldClaimedBy)
	}
	if m.FieldCleared(job.FieldHeartbeatAt) {
		fields = append(fields, job.FieldHeartbeatAt)
	}
	if m.FieldCleared(job.FieldStartedAt) {
		fields = append(fields, job.FieldStartedAt)
	}
	if m.FieldCleared(job.FieldFinishedAt) {
		fields = append(fields, job.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldJobKey:
		m.ClearJobKey()
		return nil
	case job.FieldLastError:
		m.ClearLastError()
		return nil
	case job.FieldClaimedBy:
		m.ClearClaimedBy()
		return nil
	case job.FieldHeartbeatAt:
		m.ClearHeartbeatAt()
		return nil
	case job.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case job.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldQueue:
		m.ResetQueue()
		return nil
	case job.FieldName:
		m.ResetName()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldState:
		m.ResetState()
		return nil
	case job.FieldJobKey:
		m.ResetJobKey()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldRunAt:
		m.ResetRunAt()
		return nil
	case job.FieldAttempts:
		m.ResetAttempts()
		return nil
	case job.FieldMaxAttempts:
		m.ResetMaxAttempts()
		return nil
	case job.FieldBackoffBaseMs:
		m.ResetBackoffBaseMs()
		return nil
	case job.FieldRemoveOnComplete:
		m.ResetRemoveOnComplete()
		return nil
	case job.FieldStalledCount:
		m.ResetStalledCount()
		return nil
	case job.FieldLastError:
		m.ResetLastError()
		return nil
	case job.FieldClaimedBy:
		m.ResetClaimedBy()
		return nil
	case job.FieldHeartbeatAt:
		m.ResetHeartbeatAt()
		return nil
	case job.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case job.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Job edge %s", name)
}

// PromptMutation represents an operation that mutates the Prompt nodes in the graph.
type PromptMutation struct {
	config
	op              Op
	typ             string
	id              *string
	name            *string
	version         *int
	addversion      *int
	template        *string
	is_active       *bool
	prompt_type     *prompt.PromptType
	response_schema *map[string]interface{}
	mime_type       *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Prompt, error)
	predicates      []predicate.Prompt
}

var _ ent.Mutation = (*PromptMutation)(nil)

// promptOption allows management of the mutation configuration using functional options.
type promptOption func(*PromptMutation)

// newPromptMutation creates new mutation for the Prompt entity.
func newPromptMutation(c config, op Op, opts ...promptOption) *PromptMutation {
	m := &PromptMutation{
		config:        c,
		op:            op,
		typ:           TypePrompt,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPromptID sets the ID field of the mutation.
func withPromptID(id string) promptOption {
	return func(m *PromptMutation) {
		var (
			err   error
			once  sync.Once
			value *Prompt
		)
		m.oldValue = func(ctx context.Context) (*Prompt, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Prompt.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPrompt sets the old Prompt of the mutation.
func withPrompt(node *Prompt) promptOption {
	return func(m *PromptMutation) {
		m.oldValue = func(context.Context) (*Prompt, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PromptMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PromptMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Prompt entities.
func (m *PromptMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PromptMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PromptMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Prompt.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *PromptMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PromptMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PromptMutation) ResetName() {
	m.name = nil
}

// SetVersion sets the "version" field.
func (m *PromptMutation) SetVersion(i int) {
	m.version = &i
	m.addversion = nil
}

// Version returns the value of the "version" field in the mutation.
func (m *PromptMutation) Version() (r int, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// AddVersion adds i to the "version" field.
func (m *PromptMutation) AddVersion(i int) {
	if m.addversion != nil {
		*m.addversion += i
	} else {
		m.addversion = &i
	}
}

// AddedVersion returns the value that was added to the "version" field in this mutation.
func (m *PromptMutation) AddedVersion() (r int, exists bool) {
	v := m.addversion
	if v == nil {
		return
	}
	return *v, true
}

// ResetVersion resets all changes to the "version" field.
func (m *PromptMutation) ResetVersion() {
	m.version = nil
	m.addversion = nil
}

// SetTemplate sets the "template" field.
func (m *PromptMutation) SetTemplate(s string) {
	m.template = &s
}

// Template returns the value of the "template" field in the mutation.
func (m *PromptMutation) Template() (r string, exists bool) {
	v := m.template
	if v == nil {
		return
	}
	return *v, true
}

// OldTemplate returns the old "template" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldTemplate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemplate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemplate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemplate: %w", err)
	}
	return oldValue.Template, nil
}

// ResetTemplate resets all changes to the "template" field.
func (m *PromptMutation) ResetTemplate() {
	m.template = nil
}

// SetIsActive sets the "is_active" field.
func (m *PromptMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *PromptMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *PromptMutation) ResetIsActive() {
	m.is_active = nil
}

// SetPromptType sets the "prompt_type" field.
func (m *PromptMutation) SetPromptType(pt prompt.PromptType) {
	m.prompt_type = &pt
}

// PromptType returns the value of the "prompt_type" field in the mutation.
func (m *PromptMutation) PromptType() (r prompt.PromptType, exists bool) {
	v := m.prompt_type
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptType returns the old "prompt_type" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldPromptType(ctx context.Context) (v prompt.PromptType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptType: %w", err)
	}
	return oldValue.PromptType, nil
}

// ResetPromptType resets all changes to the "prompt_type" field.
func (m *PromptMutation) ResetPromptType() {
	m.prompt_type = nil
}

// SetResponseSchema sets the "response_schema" field.
func (m *PromptMutation) SetResponseSchema(value map[string]interface{}) {
	m.response_schema = &value
}

// ResponseSchema returns the value of the "response_schema" field in the mutation.
func (m *PromptMutation) ResponseSchema() (r map[string]interface{}, exists bool) {
	v := m.response_schema
	if v == nil {
		return
	}
	return *v, true
}

// OldResponseSchema returns the old "response_schema" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldResponseSchema(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResponseSchema is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResponseSchema requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResponseSchema: %w", err)
	}
	return oldValue.ResponseSchema, nil
}

// ClearResponseSchema clears the value of the "response_schema" field.
func (m *PromptMutation) ClearResponseSchema() {
	m.response_schema = nil
	m.clearedFields[prompt.FieldResponseSchema] = struct{}{}
}

// ResponseSchemaCleared returns if the "response_schema" field was cleared in this mutation.
func (m *PromptMutation) ResponseSchemaCleared() bool {
	_, ok := m.clearedFields[prompt.FieldResponseSchema]
	return ok
}

// ResetResponseSchema resets all changes to the "response_schema" field.
func (m *PromptMutation) ResetResponseSchema() {
	m.response_schema = nil
	delete(m.clearedFields, prompt.FieldResponseSchema)
}

// SetMimeType sets the "mime_type" field.
func (m *PromptMutation) SetMimeType(s string) {
	m.mime_type = &s
}

// MimeType returns the value of the "mime_type" field in the mutation.
func (m *PromptMutation) MimeType() (r string, exists bool) {
	v := m.mime_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMimeType returns the old "mime_type" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldMimeType(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMimeType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMimeType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMimeType: %w", err)
	}
	return oldValue.MimeType, nil
}

// ClearMimeType clears the value of the "mime_type" field.
func (m *PromptMutation) ClearMimeType() {
	m.mime_type = nil
	m.clearedFields[prompt.FieldMimeType] = struct{}{}
}

// MimeTypeCleared returns if the "mime_type" field was cleared in this mutation.
func (m *PromptMutation) MimeTypeCleared() bool {
	_, ok := m.clearedFields[prompt.FieldMimeType]
	return ok
}

// ResetMimeType resets all changes to the "mime_type" field.
func (m *PromptMutation) ResetMimeType() {
	m.mime_type = nil
	delete(m.clearedFields, prompt.FieldMimeType)
}

// SetCreatedAt sets the "created_at" field.
func (m *PromptMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PromptMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PromptMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PromptMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PromptMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Prompt entity.
// If the Prompt object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PromptMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PromptMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the PromptMutation builder.
func (m *PromptMutation) Where(ps ...predicate.Prompt) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PromptMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PromptMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Prompt, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PromptMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PromptMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Prompt).
func (m *PromptMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PromptMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, prompt.FieldName)
	}
	if m.version != nil {
		fields = append(fields, prompt.FieldVersion)
	}
	if m.template != nil {
		fields = append(fields, prompt.FieldTemplate)
	}
	if m.is_active != nil {
		fields = append(fields, prompt.FieldIsActive)
	}
	if m.prompt_type != nil {
		fields = append(fields, prompt.FieldPromptType)
	}
	if m.response_schema != nil {
		fields = append(fields, prompt.FieldResponseSchema)
	}
	if m.mime_type != nil {
		fields = append(fields, prompt.FieldMimeType)
	}
	if m.created_at != nil {
		fields = append(fields, prompt.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, prompt.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PromptMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case prompt.FieldName:
		return m.Name()
	case prompt.FieldVersion:
		return m.Version()
	case prompt.FieldTemplate:
		return m.Template()
	case prompt.FieldIsActive:
		return m.IsActive()
	case prompt.FieldPromptType:
		return m.PromptType()
	case prompt.FieldResponseSchema:
		return m.ResponseSchema()
	case prompt.FieldMimeType:
		return m.MimeType()
	case prompt.FieldCreatedAt:
		return m.CreatedAt()
	case prompt.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PromptMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case prompt.FieldName:
		return m.OldName(ctx)
	case prompt.FieldVersion:
		return m.OldVersion(ctx)
	case prompt.FieldTemplate:
		return m.OldTemplate(ctx)
	case prompt.FieldIsActive:
		return m.OldIsActive(ctx)
	case prompt.FieldPromptType:
		return m.OldPromptType(ctx)
	case prompt.FieldResponseSchema:
		return m.OldResponseSchema(ctx)
	case prompt.FieldMimeType:
		return m.OldMimeType(ctx)
	case prompt.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case prompt.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Prompt field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) SetField(name string, value ent.Value) error {
	switch name {
	case prompt.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case prompt.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case prompt.FieldTemplate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemplate(v)
		return nil
	case prompt.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case prompt.FieldPromptType:
		v, ok := value.(prompt.PromptType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptType(v)
		return nil
	case prompt.FieldResponseSchema:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResponseSchema(v)
		return nil
	case prompt.FieldMimeType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMimeType(v)
		return nil
	case prompt.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case prompt.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PromptMutation) AddedFields() []string {
	var fields []string
	if m.addversion != nil {
		fields = append(fields, prompt.FieldVersion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PromptMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case prompt.FieldVersion:
		return m.AddedVersion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PromptMutation) AddField(name string, value ent.Value) error {
	switch name {
	case prompt.FieldVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVersion(v)
		return nil
	}
	return fmt.Errorf("unknown Prompt numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PromptMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(prompt.FieldResponseSchema) {
		fields = append(fields, prompt.FieldResponseSchema)
	}
	if m.FieldCleared(prompt.FieldMimeType) {
		fields = append(fields, prompt.FieldMimeType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PromptMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PromptMutation) ClearField(name string) error {
	switch name {
	case prompt.FieldResponseSchema:
		m.ClearResponseSchema()
		return nil
	case prompt.FieldMimeType:
		m.ClearMimeType()
		return nil
	}
	return fmt.Errorf("unknown Prompt nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PromptMutation) ResetField(name string) error {
	switch name {
	case prompt.FieldName:
		m.ResetName()
		return nil
	case prompt.FieldVersion:
		m.ResetVersion()
		return nil
	case prompt.FieldTemplate:
		m.ResetTemplate()
		return nil
	case prompt.FieldIsActive:
		m.ResetIsActive()
		return nil
	case prompt.FieldPromptType:
		m.ResetPromptType()
		return nil
	case prompt.FieldResponseSchema:
		m.ResetResponseSchema()
		return nil
	case prompt.FieldMimeType:
		m.ResetMimeType()
		return nil
	case prompt.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case prompt.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Prompt field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PromptMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PromptMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PromptMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PromptMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PromptMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PromptMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PromptMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Prompt unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PromptMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Prompt edge %s", name)
}

// QuotaUsageMutation represents an operation that mutates the QuotaUsage nodes in the graph.
type QuotaUsageMutation struct {
	config
	op            Op
	typ           string
	id            *string
	model         *string
	window        *quotausage.Window
	epoch         *int64
	addepoch      *int64
	requests      *int64
	addrequests   *int64
	tokens        *int64
	addtokens     *int64
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*QuotaUsage, error)
	predicates    []predicate.QuotaUsage
}

var _ ent.Mutation = (*QuotaUsageMutation)(nil)

// quotausageOption allows management of the mutation configuration using functional options.
type quotausageOption func(*QuotaUsageMutation)

// newQuotaUsageMutation creates new mutation for the QuotaUsage entity.
func newQuotaUsageMutation(c config, op Op, opts ...quotausageOption) *QuotaUsageMutation {
	m := &QuotaUsageMutation{
		config:        c,
		op:            op,
		typ:           TypeQuotaUsage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuotaUsageID sets the ID field of the mutation.
func withQuotaUsageID(id string) quotausageOption {
	return func(m *QuotaUsageMutation) {
		var (
			err   error
			once  sync.Once
			value *QuotaUsage
		)
		m.oldValue = func(ctx context.Context) (*QuotaUsage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuotaUsage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuotaUsage sets the old QuotaUsage of the mutation.
func withQuotaUsage(node *QuotaUsage) quotausageOption {
	return func(m *QuotaUsageMutation) {
		m.oldValue = func(context.Context) (*QuotaUsage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuotaUsageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuotaUsageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuotaUsage entities.
func (m *QuotaUsageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuotaUsageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuotaUsageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuotaUsage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetModel sets the "model" field.
func (m *QuotaUsageMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *QuotaUsageMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the QuotaUsage entity.
// If the QuotaUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaUsageMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *QuotaUsageMutation) ResetModel() {
	m.model = nil
}

// SetWindow sets the "window" field.
func (m *QuotaUsageMutation) SetWindow(q quotausage.Window) {
	m.window = &q
}

// Window returns the value of the "window" field in the mutation.
func (m *QuotaUsageMutation) Window() (r quotausage.Window, exists bool) {
	v := m.window
	if v == nil {
		return
	}
	return *v, true
}

// OldWindow returns the old "window" field's value of the QuotaUsage entity.
// If the QuotaUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaUsageMutation) OldWindow(ctx context.Context) (v quotausage.Window, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindow is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindow requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindow: %w", err)
	}
	return oldValue.Window, nil
}

// ResetWindow resets all changes to the "window" field.
func (m *QuotaUsageMutation) ResetWindow() {
	m.window = nil
}

// SetEpoch sets the "epoch" field.
func (m *QuotaUsageMutation) SetEpoch(i int64) {
	m.epoch = &i
	m.addepoch = nil
}

// Epoch returns the value of the "epoch" field in the mutation.
func (m *QuotaUsageMutation) Epoch() (r int64, exists bool) {
	v := m.epoch
	if v == nil {
		return
	}
	return *v, true
}

// OldEpoch returns the old "epoch" field's value of the QuotaUsage entity.
// If the QuotaUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaUsageMutation) OldEpoch(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEpoch is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEpoch requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEpoch: %w", err)
	}
	return oldValue.Epoch, nil
}

// AddEpoch adds i to the "epoch" field.
func (m *QuotaUsageMutation) AddEpoch(i int64) {
	if m.addepoch != nil {
		*m.addepoch += i
	} else {
		m.addepoch = &i
	}
}

// AddedEpoch returns the value that was added to the "epoch" field in this mutation.
func (m *QuotaUsageMutation) AddedEpoch() (r int64, exists bool) {
	v := m.addepoch
	if v == nil {
		return
	}
	return *v, true
}

// ResetEpoch resets all changes to the "epoch" field.
func (m *QuotaUsageMutation) ResetEpoch() {
	m.epoch = nil
	m.addepoch = nil
}

// SetRequests sets the "requests" field.
func (m *QuotaUsageMutation) SetRequests(i int64) {
	m.requests = &i
	m.addrequests = nil
}

// Requests returns the value of the "requests" field in the mutation.
func (m *QuotaUsageMutation) Requests() (r int64, exists bool) {
	v := m.requests
	if v == nil {
		return
	}
	return *v, true
}

// OldRequests returns the old "requests" field's value of the QuotaUsage entity.
// If the QuotaUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaUsageMutation) OldRequests(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRequests is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRequests requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRequests: %w", err)
	}
	return oldValue.Requests, nil
}

// AddRequests adds i to the "requests" field.
func (m *QuotaUsageMutation) AddRequests(i int64) {
	if m.addrequests != nil {
		*m.addrequests += i
	} else {
		m.addrequests = &i
	}
}

// AddedRequests returns the value that was added to the "requests" field in this mutation.
func (m *QuotaUsageMutation) AddedRequests() (r int64, exists bool) {
	v := m.addrequests
	if v == nil {
		return
	}
	return *v, true
}

// ResetRequests resets all changes to the "requests" field.
func (m *QuotaUsageMutation) ResetRequests() {
	m.requests = nil
	m.addrequests = nil
}

// SetTokens sets the "tokens" field.
func (m *QuotaUsageMutation) SetTokens(i int64) {
	m.tokens = &i
	m.addtokens = nil
}

// Tokens returns the value of the "tokens" field in the mutation.
func (m *QuotaUsageMutation) Tokens() (r int64, exists bool) {
	v := m.tokens
	if v == nil {
		return
	}
	return *v, true
}

// OldTokens returns the old "tokens" field's value of the QuotaUsage entity.
// If the QuotaUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaUsageMutation) OldTokens(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokens is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokens requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokens: %w", err)
	}
	return oldValue.Tokens, nil
}

// AddTokens adds i to the "tokens" field.
func (m *QuotaUsageMutation) AddTokens(i int64) {
	if m.addtokens != nil {
		*m.addtokens += i
	} else {
		m.addtokens = &i
	}
}

// AddedTokens returns the value that was added to the "tokens" field in this mutation.
func (m *QuotaUsageMutation) AddedTokens() (r int64, exists bool) {
	v := m.addtokens
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokens resets all changes to the "tokens" field.
func (m *QuotaUsageMutation) ResetTokens() {
	m.tokens = nil
	m.addtokens = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *QuotaUsageMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *QuotaUsageMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the QuotaUsage entity.
// If the QuotaUsage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaUsageMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *QuotaUsageMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the QuotaUsageMutation builder.
func (m *QuotaUsageMutation) Where(ps ...predicate.QuotaUsage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuotaUsageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuotaUsageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuotaUsage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuotaUsageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuotaUsageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuotaUsage).
func (m *QuotaUsageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuotaUsageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.model != nil {
		fields = append(fields, quotausage.FieldModel)
	}
	if m.window != nil {
		fields = append(fields, quotausage.FieldWindow)
	}
	if m.epoch != nil {
		fields = append(fields, quotausage.FieldEpoch)
	}
	if m.requests != nil {
		fields = append(fields, quotausage.FieldRequests)
	}
	if m.tokens != nil {
		fields = append(fields, quotausage.FieldTokens)
	}
	if m.updated_at != nil {
		fields = append(fields, quotausage.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuotaUsageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quotausage.FieldModel:
		return m.Model()
	case quotausage.FieldWindow:
		return m.Window()
	case quotausage.FieldEpoch:
		return m.Epoch()
	case quotausage.FieldRequests:
		return m.Requests()
	case quotausage.FieldTokens:
		return m.Tokens()
	case quotausage.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuotaUsageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quotausage.FieldModel:
		return m.OldModel(ctx)
	case quotausage.FieldWindow:
		return m.OldWindow(ctx)
	case quotausage.FieldEpoch:
		return m.OldEpoch(ctx)
	case quotausage.FieldRequests:
		return m.OldRequests(ctx)
	case quotausage.FieldTokens:
		return m.OldTokens(ctx)
	case quotausage.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuotaUsage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuotaUsageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quotausage.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case quotausage.FieldWindow:
		v, ok := value.(quotausage.Window)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindow(v)
		return nil
	case quotausage.FieldEpoch:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEpoch(v)
		return nil
	case quotausage.FieldRequests:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRequests(v)
		return nil
	case quotausage.FieldTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokens(v)
		return nil
	case quotausage.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuotaUsage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuotaUsageMutation) AddedFields() []string {
	var fields []string
	if m.addepoch != nil {
		fields = append(fields, quotausage.FieldEpoch)
	}
	if m.addrequests != nil {
		fields = append(fields, quotausage.FieldRequests)
	}
	if m.addtokens != nil {
		fields = append(fields, quotausage.FieldTokens)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuotaUsageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quotausage.FieldEpoch:
		return m.AddedEpoch()
	case quotausage.FieldRequests:
		return m.AddedRequests()
	case quotausage.FieldTokens:
		return m.AddedTokens()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuotaUsageMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quotausage.FieldEpoch:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEpoch(v)
		return nil
	case quotausage.FieldRequests:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRequests(v)
		return nil
	case quotausage.FieldTokens:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokens(v)
		return nil
	}
	return fmt.Errorf("unknown QuotaUsage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuotaUsageMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuotaUsageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuotaUsageMutation) ClearField(name string) error {
	return fmt.Errorf("unknown QuotaUsage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuotaUsageMutation) ResetField(name string) error {
	switch name {
	case quotausage.FieldModel:
		m.ResetModel()
		return nil
	case quotausage.FieldWindow:
		m.ResetWindow()
		return nil
	case quotausage.FieldEpoch:
		m.ResetEpoch()
		return nil
	case quotausage.FieldRequests:
		m.ResetRequests()
		return nil
	case quotausage.FieldTokens:
		m.ResetTokens()
		return nil
	case quotausage.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown QuotaUsage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuotaUsageMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuotaUsageMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuotaUsageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuotaUsageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuotaUsageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuotaUsageMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuotaUsageMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuotaUsage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuotaUsageMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuotaUsage edge %s", name)
}

// QuotaViolationMutation represents an operation that mutates the QuotaViolation nodes in the graph.
type QuotaViolationMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	model              *string
	kind               *quotaviolation.Kind
	retry_delay_sec    *int
	addretry_delay_sec *int
	raw_payload        *string
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*QuotaViolation, error)
	predicates         []predicate.QuotaViolation
}

var _ ent.Mutation = (*QuotaViolationMutation)(nil)

// quotaviolationOption allows management of the mutation configuration using functional options.
type quotaviolationOption func(*QuotaViolationMutation)

// newQuotaViolationMutation creates new mutation for the QuotaViolation entity.
func newQuotaViolationMutation(c config, op Op, opts ...quotaviolationOption) *QuotaViolationMutation {
	m := &QuotaViolationMutation{
		config:        c,
		op:            op,
		typ:           TypeQuotaViolation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withQuotaViolationID sets the ID field of the mutation.
func withQuotaViolationID(id string) quotaviolationOption {
	return func(m *QuotaViolationMutation) {
		var (
			err   error
			once  sync.Once
			value *QuotaViolation
		)
		m.oldValue = func(ctx context.Context) (*QuotaViolation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().QuotaViolation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withQuotaViolation sets the old QuotaViolation of the mutation.
func withQuotaViolation(node *QuotaViolation) quotaviolationOption {
	return func(m *QuotaViolationMutation) {
		m.oldValue = func(context.Context) (*QuotaViolation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m QuotaViolationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m QuotaViolationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of QuotaViolation entities.
func (m *QuotaViolationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *QuotaViolationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *QuotaViolationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().QuotaViolation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetModel sets the "model" field.
func (m *QuotaViolationMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *QuotaViolationMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the QuotaViolation entity.
// If the QuotaViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaViolationMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *QuotaViolationMutation) ResetModel() {
	m.model = nil
}

// SetKind sets the "kind" field.
func (m *QuotaViolationMutation) SetKind(q quotaviolation.Kind) {
	m.kind = &q
}

// Kind returns the value of the "kind" field in the mutation.
func (m *QuotaViolationMutation) Kind() (r quotaviolation.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the QuotaViolation entity.
// If the QuotaViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaViolationMutation) OldKind(ctx context.Context) (v quotaviolation.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *QuotaViolationMutation) ResetKind() {
	m.kind = nil
}

// SetRetryDelaySec sets the "retry_delay_sec" field.
func (m *QuotaViolationMutation) SetRetryDelaySec(i int) {
	m.retry_delay_sec = &i
	m.addretry_delay_sec = nil
}

// RetryDelaySec returns the value of the "retry_delay_sec" field in the mutation.
func (m *QuotaViolationMutation) RetryDelaySec() (r int, exists bool) {
	v := m.retry_delay_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryDelaySec returns the old "retry_delay_sec" field's value of the QuotaViolation entity.
// If the QuotaViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaViolationMutation) OldRetryDelaySec(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryDelaySec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryDelaySec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryDelaySec: %w", err)
	}
	return oldValue.RetryDelaySec, nil
}

// AddRetryDelaySec adds i to the "retry_delay_sec" field.
func (m *QuotaViolationMutation) AddRetryDelaySec(i int) {
	if m.addretry_delay_sec != nil {
		*m.addretry_delay_sec += i
	} else {
		m.addretry_delay_sec = &i
	}
}

// AddedRetryDelaySec returns the value that was added to the "retry_delay_sec" field in this mutation.
func (m *QuotaViolationMutation) AddedRetryDelaySec() (r int, exists bool) {
	v := m.addretry_delay_sec
	if v == nil {
		return
	}
	return *v, true
}

// ClearRetryDelaySec clears the value of the "retry_delay_sec" field.
func (m *QuotaViolationMutation) ClearRetryDelaySec() {
	m.retry_delay_sec = nil
	m.addretry_delay_sec = nil
	m.clearedFields[quotaviolation.FieldRetryDelaySec] = struct{}{}
}

// RetryDelaySecCleared returns if the "retry_delay_sec" field was cleared in this mutation.
func (m *QuotaViolationMutation) RetryDelaySecCleared() bool {
	_, ok := m.clearedFields[quotaviolation.FieldRetryDelaySec]
	return ok
}

// ResetRetryDelaySec resets all changes to the "retry_delay_sec" field.
func (m *QuotaViolationMutation) ResetRetryDelaySec() {
	m.retry_delay_sec = nil
	m.addretry_delay_sec = nil
	delete(m.clearedFields, quotaviolation.FieldRetryDelaySec)
}

// SetRawPayload sets the "raw_payload" field.
func (m *QuotaViolationMutation) SetRawPayload(s string) {
	m.raw_payload = &s
}

// RawPayload returns the value of the "raw_payload" field in the mutation.
func (m *QuotaViolationMutation) RawPayload() (r string, exists bool) {
	v := m.raw_payload
	if v == nil {
		return
	}
	return *v, true
}

// OldRawPayload returns the old "raw_payload" field's value of the QuotaViolation entity.
// If the QuotaViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaViolationMutation) OldRawPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawPayload: %w", err)
	}
	return oldValue.RawPayload, nil
}

// ClearRawPayload clears the value of the "raw_payload" field.
func (m *QuotaViolationMutation) ClearRawPayload() {
	m.raw_payload = nil
	m.clearedFields[quotaviolation.FieldRawPayload] = struct{}{}
}

// RawPayloadCleared returns if the "raw_payload" field was cleared in this mutation.
func (m *QuotaViolationMutation) RawPayloadCleared() bool {
	_, ok := m.clearedFields[quotaviolation.FieldRawPayload]
	return ok
}

// ResetRawPayload resets all changes to the "raw_payload" field.
func (m *QuotaViolationMutation) ResetRawPayload() {
	m.raw_payload = nil
	delete(m.clearedFields, quotaviolation.FieldRawPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *QuotaViolationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *QuotaViolationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the QuotaViolation entity.
// If the QuotaViolation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *QuotaViolationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *QuotaViolationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the QuotaViolationMutation builder.
func (m *QuotaViolationMutation) Where(ps ...predicate.QuotaViolation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the QuotaViolationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *QuotaViolationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.QuotaViolation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *QuotaViolationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *QuotaViolationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (QuotaViolation).
func (m *QuotaViolationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *QuotaViolationMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.model != nil {
		fields = append(fields, quotaviolation.FieldModel)
	}
	if m.kind != nil {
		fields = append(fields, quotaviolation.FieldKind)
	}
	if m.retry_delay_sec != nil {
		fields = append(fields, quotaviolation.FieldRetryDelaySec)
	}
	if m.raw_payload != nil {
		fields = append(fields, quotaviolation.FieldRawPayload)
	}
	if m.created_at != nil {
		fields = append(fields, quotaviolation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *QuotaViolationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case quotaviolation.FieldModel:
		return m.Model()
	case quotaviolation.FieldKind:
		return m.Kind()
	case quotaviolation.FieldRetryDelaySec:
		return m.RetryDelaySec()
	case quotaviolation.FieldRawPayload:
		return m.RawPayload()
	case quotaviolation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *QuotaViolationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case quotaviolation.FieldModel:
		return m.OldModel(ctx)
	case quotaviolation.FieldKind:
		return m.OldKind(ctx)
	case quotaviolation.FieldRetryDelaySec:
		return m.OldRetryDelaySec(ctx)
	case quotaviolation.FieldRawPayload:
		return m.OldRawPayload(ctx)
	case quotaviolation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown QuotaViolation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuotaViolationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case quotaviolation.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case quotaviolation.FieldKind:
		v, ok := value.(quotaviolation.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case quotaviolation.FieldRetryDelaySec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryDelaySec(v)
		return nil
	case quotaviolation.FieldRawPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawPayload(v)
		return nil
	case quotaviolation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown QuotaViolation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *QuotaViolationMutation) AddedFields() []string {
	var fields []string
	if m.addretry_delay_sec != nil {
		fields = append(fields, quotaviolation.FieldRetryDelaySec)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *QuotaViolationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case quotaviolation.FieldRetryDelaySec:
		return m.AddedRetryDelaySec()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *QuotaViolationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case quotaviolation.FieldRetryDelaySec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryDelaySec(v)
		return nil
	}
	return fmt.Errorf("unknown QuotaViolation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *QuotaViolationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(quotaviolation.FieldRetryDelaySec) {
		fields = append(fields, quotaviolation.FieldRetryDelaySec)
	}
	if m.FieldCleared(quotaviolation.FieldRawPayload) {
		fields = append(fields, quotaviolation.FieldRawPayload)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *QuotaViolationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *QuotaViolationMutation) ClearField(name string) error {
	switch name {
	case quotaviolation.FieldRetryDelaySec:
		m.ClearRetryDelaySec()
		return nil
	case quotaviolation.FieldRawPayload:
		m.ClearRawPayload()
		return nil
	}
	return fmt.Errorf("unknown QuotaViolation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *QuotaViolationMutation) ResetField(name string) error {
	switch name {
	case quotaviolation.FieldModel:
		m.ResetModel()
		return nil
	case quotaviolation.FieldKind:
		m.ResetKind()
		return nil
	case quotaviolation.FieldRetryDelaySec:
		m.ResetRetryDelaySec()
		return nil
	case quotaviolation.FieldRawPayload:
		m.ResetRawPayload()
		return nil
	case quotaviolation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown QuotaViolation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *QuotaViolationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *QuotaViolationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *QuotaViolationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *QuotaViolationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *QuotaViolationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *QuotaViolationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *QuotaViolationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown QuotaViolation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *QuotaViolationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown QuotaViolation edge %s", name)
}

// SegmentMutation represents an operation that mutates the Segment nodes in the graph.
type SegmentMutation struct {
	config
	op               Op
	typ              string
	id               *string
	index            *int
	addindex         *int
	start_sec        *int
	addstart_sec     *int
	end_sec          *int
	addend_sec       *int
	duration_sec     *int
	addduration_sec  *int
	state            *segment.State
	analysis_result  *map[string]interface{}
	model_used       *string
	processing_ms    *int64
	addprocessing_ms *int64
	error            *string
	retry_count      *int
	addretry_count   *int
	prompt_version   *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	content          *string
	clearedcontent   bool
	done             bool
	oldValue         func(context.Context) (*Segment, error)
	predicates       []predicate.Segment
}

var _ ent.Mutation = (*SegmentMutation)(nil)

// segmentOption allows management of the mutation configuration using functional options.
type segmentOption func(*SegmentMutation)

// newSegmentMutation creates new mutation for the Segment entity.
func newSegmentMutation(c config, op Op, opts ...segmentOption) *SegmentMutation {
	m := &SegmentMutation{
		config:        c,
		op:            op,
		typ:           TypeSegment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSegmentID sets the ID field of the mutation.
func withSegmentID(id string) segmentOption {
	return func(m *SegmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Segment
		)
		m.oldValue = func(ctx context.Context) (*Segment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Segment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSegment sets the old Segment of the mutation.
func withSegment(node *Segment) segmentOption {
	return func(m *SegmentMutation) {
		m.oldValue = func(context.Context) (*Segment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SegmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SegmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Segment entities.
func (m *SegmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SegmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SegmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Segment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetContentID sets the "content_id" field.
func (m *SegmentMutation) SetContentID(s string) {
	m.content = &s
}

// ContentID returns the value of the "content_id" field in the mutation.
func (m *SegmentMutation) ContentID() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContentID returns the old "content_id" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldContentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentID: %w", err)
	}
	return oldValue.ContentID, nil
}

// ResetContentID resets all changes to the "content_id" field.
func (m *SegmentMutation) ResetContentID() {
	m.content = nil
}

// SetIndex sets the "index" field.
func (m *SegmentMutation) SetIndex(i int) {
	m.index = &i
	m.addindex = nil
}

// Index returns the value of the "index" field in the mutation.
func (m *SegmentMutation) Index() (r int, exists bool) {
	v := m.index
	if v == nil {
		return
	}
	return *v, true
}

// OldIndex returns the old "index" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldIndex(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIndex is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIndex requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIndex: %w", err)
	}
	return oldValue.Index, nil
}

// AddIndex adds i to the "index" field.
func (m *SegmentMutation) AddIndex(i int) {
	if m.addindex != nil {
		*m.addindex += i
	} else {
		m.addindex = &i
	}
}

// AddedIndex returns the value that was added to the "index" field in this mutation.
func (m *SegmentMutation) AddedIndex() (r int, exists bool) {
	v := m.addindex
	if v == nil {
		return
	}
	return *v, true
}

// ResetIndex resets all changes to the "index" field.
func (m *SegmentMutation) ResetIndex() {
	m.index = nil
	m.addindex = nil
}

// SetStartSec sets the "start_sec" field.
func (m *SegmentMutation) SetStartSec(i int) {
	m.start_sec = &i
	m.addstart_sec = nil
}

// StartSec returns the value of the "start_sec" field in the mutation.
func (m *SegmentMutation) StartSec() (r int, exists bool) {
	v := m.start_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldStartSec returns the old "start_sec" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldStartSec(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartSec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartSec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartSec: %w", err)
	}
	return oldValue.StartSec, nil
}

// AddStartSec adds i to the "start_sec" field.
func (m *SegmentMutation) AddStartSec(i int) {
	if m.addstart_sec != nil {
		*m.addstart_sec += i
	} else {
		m.addstart_sec = &i
	}
}

// AddedStartSec returns the value that was added to the "start_sec" field in this mutation.
func (m *SegmentMutation) AddedStartSec() (r int, exists bool) {
	v := m.addstart_sec
	if v == nil {
		return
	}
	return *v, true
}

// ResetStartSec resets all changes to the "start_sec" field.
func (m *SegmentMutation) ResetStartSec() {
	m.start_sec = nil
	m.addstart_sec = nil
}

// SetEndSec sets the "end_sec" field.
func (m *SegmentMutation) SetEndSec(i int) {
	m.end_sec = &i
	m.addend_sec = nil
}

// EndSec returns the value of the "end_sec" field in the mutation.
func (m *SegmentMutation) EndSec() (r int, exists bool) {
	v := m.end_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldEndSec returns the old "end_sec" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldEndSec(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndSec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndSec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndSec: %w", err)
	}
	return oldValue.EndSec, nil
}

// AddEndSec adds i to the "end_sec" field.
func (m *SegmentMutation) AddEndSec(i int) {
	if m.addend_sec != nil {
		*m.addend_sec += i
	} else {
		m.addend_sec = &i
	}
}

// AddedEndSec returns the value that was added to the "end_sec" field in this mutation.
func (m *SegmentMutation) AddedEndSec() (r int, exists bool) {
	v := m.addend_sec
	if v == nil {
		return
	}
	return *v, true
}

// ResetEndSec resets all changes to the "end_sec" field.
func (m *SegmentMutation) ResetEndSec() {
	m.end_sec = nil
	m.addend_sec = nil
}

// SetDurationSec sets the "duration_sec" field.
func (m *SegmentMutation) SetDurationSec(i int) {
	m.duration_sec = &i
	m.addduration_sec = nil
}

// DurationSec returns the value of the "duration_sec" field in the mutation.
func (m *SegmentMutation) DurationSec() (r int, exists bool) {
	v := m.duration_sec
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSec returns the old "duration_sec" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldDurationSec(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSec is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSec requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSec: %w", err)
	}
	return oldValue.DurationSec, nil
}

// AddDurationSec adds i to the "duration_sec" field.
func (m *SegmentMutation) AddDurationSec(i int) {
	if m.addduration_sec != nil {
		*m.addduration_sec += i
	} else {
		m.addduration_sec = &i
	}
}

// AddedDurationSec returns the value that was added to the "duration_sec" field in this mutation.
func (m *SegmentMutation) AddedDurationSec() (r int, exists bool) {
	v := m.addduration_sec
	if v == nil {
		return
	}
	return *v, true
}

// ResetDurationSec resets all changes to the "duration_sec" field.
func (m *SegmentMutation) ResetDurationSec() {
	m.duration_sec = nil
	m.addduration_sec = nil
}

// SetState sets the "state" field.
func (m *SegmentMutation) SetState(s segment.State) {
	m.state = &s
}

// State returns the value of the "state" field in the mutation.
func (m *SegmentMutation) State() (r segment.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldState(ctx context.Context) (v segment.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *SegmentMutation) ResetState() {
	m.state = nil
}

// SetAnalysisResult sets the "analysis_result" field.
func (m *SegmentMutation) SetAnalysisResult(value map[string]interface{}) {
	m.analysis_result = &value
}

// AnalysisResult returns the value of the "analysis_result" field in the mutation.
func (m *SegmentMutation) AnalysisResult() (r map[string]interface{}, exists bool) {
	v := m.analysis_result
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisResult returns the old "analysis_result" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldAnalysisResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisResult: %w", err)
	}
	return oldValue.AnalysisResult, nil
}

// ClearAnalysisResult clears the value of the "analysis_result" field.
func (m *SegmentMutation) ClearAnalysisResult() {
	m.analysis_result = nil
	m.clearedFields[segment.FieldAnalysisResult] = struct{}{}
}

// AnalysisResultCleared returns if the "analysis_result" field was cleared in this mutation.
func (m *SegmentMutation) AnalysisResultCleared() bool {
	_, ok := m.clearedFields[segment.FieldAnalysisResult]
	return ok
}

// ResetAnalysisResult resets all changes to the "analysis_result" field.
func (m *SegmentMutation) ResetAnalysisResult() {
	m.analysis_result = nil
	delete(m.clearedFields, segment.FieldAnalysisResult)
}

// SetModelUsed sets the "model_used" field.
func (m *SegmentMutation) SetModelUsed(s string) {
	m.model_used = &s
}

// ModelUsed returns the value of the "model_used" field in the mutation.
func (m *SegmentMutation) ModelUsed() (r string, exists bool) {
	v := m.model_used
	if v == nil {
		return
	}
	return *v, true
}

// OldModelUsed returns the old "model_used" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldModelUsed(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelUsed: %w", err)
	}
	return oldValue.ModelUsed, nil
}

// ClearModelUsed clears the value of the "model_used" field.
func (m *SegmentMutation) ClearModelUsed() {
	m.model_used = nil
	m.clearedFields[segment.FieldModelUsed] = struct{}{}
}

// ModelUsedCleared returns if the "model_used" field was cleared in this mutation.
func (m *SegmentMutation) ModelUsedCleared() bool {
	_, ok := m.clearedFields[segment.FieldModelUsed]
	return ok
}

// ResetModelUsed resets all changes to the "model_used" field.
func (m *SegmentMutation) ResetModelUsed() {
	m.model_used = nil
	delete(m.clearedFields, segment.FieldModelUsed)
}

// SetProcessingMs sets the "processing_ms" field.
func (m *SegmentMutation) SetProcessingMs(i int64) {
	m.processing_ms = &i
	m.addprocessing_ms = nil
}

// ProcessingMs returns the value of the "processing_ms" field in the mutation.
func (m *SegmentMutation) ProcessingMs() (r int64, exists bool) {
	v := m.processing_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingMs returns the old "processing_ms" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldProcessingMs(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingMs: %w", err)
	}
	return oldValue.ProcessingMs, nil
}

// AddProcessingMs adds i to the "processing_ms" field.
func (m *SegmentMutation) AddProcessingMs(i int64) {
	if m.addprocessing_ms != nil {
		*m.addprocessing_ms += i
	} else {
		m.addprocessing_ms = &i
	}
}

// AddedProcessingMs returns the value that was added to the "processing_ms" field in this mutation.
func (m *SegmentMutation) AddedProcessingMs() (r int64, exists bool) {
	v := m.addprocessing_ms
	if v == nil {
		return
	}
	return *v, true
}

// ClearProcessingMs clears the value of the "processing_ms" field.
func (m *SegmentMutation) ClearProcessingMs() {
	m.processing_ms = nil
	m.addprocessing_ms = nil
	m.clearedFields[segment.FieldProcessingMs] = struct{}{}
}

// ProcessingMsCleared returns if the "processing_ms" field was cleared in this mutation.
func (m *SegmentMutation) ProcessingMsCleared() bool {
	_, ok := m.clearedFields[segment.FieldProcessingMs]
	return ok
}

// ResetProcessingMs resets all changes to the "processing_ms" field.
func (m *SegmentMutation) ResetProcessingMs() {
	m.processing_ms = nil
	m.addprocessing_ms = nil
	delete(m.clearedFields, segment.FieldProcessingMs)
}

// SetError sets the "error" field.
func (m *SegmentMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *SegmentMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *SegmentMutation) ClearError() {
	m.error = nil
	m.clearedFields[segment.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *SegmentMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[segment.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *SegmentMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, segment.FieldError)
}

// SetRetryCount sets the "retry_count" field.
func (m *SegmentMutation) SetRetryCount(i int) {
	m.retry_count = &i
	m.addretry_count = nil
}

// RetryCount returns the value of the "retry_count" field in the mutation.
func (m *SegmentMutation) RetryCount() (r int, exists bool) {
	v := m.retry_count
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryCount returns the old "retry_count" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldRetryCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryCount: %w", err)
	}
	return oldValue.RetryCount, nil
}

// AddRetryCount adds i to the "retry_count" field.
func (m *SegmentMutation) AddRetryCount(i int) {
	if m.addretry_count != nil {
		*m.addretry_count += i
	} else {
		m.addretry_count = &i
	}
}

// AddedRetryCount returns the value that was added to the "retry_count" field in this mutation.
func (m *SegmentMutation) AddedRetryCount() (r int, exists bool) {
	v := m.addretry_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetRetryCount resets all changes to the "retry_count" field.
func (m *SegmentMutation) ResetRetryCount() {
	m.retry_count = nil
	m.addretry_count = nil
}

// SetPromptVersion sets the "prompt_version" field.
func (m *SegmentMutation) SetPromptVersion(s string) {
	m.prompt_version = &s
}

// PromptVersion returns the value of the "prompt_version" field in the mutation.
func (m *SegmentMutation) PromptVersion() (r string, exists bool) {
	v := m.prompt_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptVersion returns the old "prompt_version" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldPromptVersion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptVersion: %w", err)
	}
	return oldValue.PromptVersion, nil
}

// ClearPromptVersion clears the value of the "prompt_version" field.
func (m *SegmentMutation) ClearPromptVersion() {
	m.prompt_version = nil
	m.clearedFields[segment.FieldPromptVersion] = struct{}{}
}

// PromptVersionCleared returns if the "prompt_version" field was cleared in this mutation.
func (m *SegmentMutation) PromptVersionCleared() bool {
	_, ok := m.clearedFields[segment.FieldPromptVersion]
	return ok
}

// ResetPromptVersion resets all changes to the "prompt_version" field.
func (m *SegmentMutation) ResetPromptVersion() {
	m.prompt_version = nil
	delete(m.clearedFields, segment.FieldPromptVersion)
}

// SetCreatedAt sets the "created_at" field.
func (m *SegmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SegmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SegmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SegmentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SegmentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Segment entity.
// If the Segment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SegmentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SegmentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearContent clears the "content" edge to the Content entity.
func (m *SegmentMutation) ClearContent() {
	m.clearedcontent = true
	m.clearedFields[segment.FieldContentID] = struct{}{}
}

// ContentCleared reports if the "content" edge to the Content entity was cleared.
func (m *SegmentMutation) ContentCleared() bool {
	return m.clearedcontent
}

// ContentIDs returns the "content" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ContentID instead. It exists only for internal usage by the builders.
func (m *SegmentMutation) ContentIDs() (ids []string) {
	if id := m.content; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetContent resets all changes to the "content" edge.
func (m *SegmentMutation) ResetContent() {
	m.content = nil
	m.clearedcontent = false
}

// Where appends a list predicates to the SegmentMutation builder.
func (m *SegmentMutation) Where(ps ...predicate.Segment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SegmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SegmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Segment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SegmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SegmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Segment).
func (m *SegmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SegmentMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.content != nil {
		fields = append(fields, segment.FieldContentID)
	}
	if m.index != nil {
		fields = append(fields, segment.FieldIndex)
	}
	if m.start_sec != nil {
		fields = append(fields, segment.FieldStartSec)
	}
	if m.end_sec != nil {
		fields = append(fields, segment.FieldEndSec)
	}
	if m.duration_sec != nil {
		fields = append(fields, segment.FieldDurationSec)
	}
	if m.state != nil {
		fields = append(fields, segment.FieldState)
	}
	if m.analysis_result != nil {
		fields = append(fields, segment.FieldAnalysisResult)
	}
	if m.model_used != nil {
		fields = append(fields, segment.FieldModelUsed)
	}
	if m.processing_ms != nil {
		fields = append(fields, segment.FieldProcessingMs)
	}
	if m.error != nil {
		fields = append(fields, segment.FieldError)
	}
	if m.retry_count != nil {
		fields = append(fields, segment.FieldRetryCount)
	}
	if m.prompt_version != nil {
		fields = append(fields, segment.FieldPromptVersion)
	}
	if m.created_at != nil {
		fields = append(fields, segment.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, segment.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SegmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case segment.FieldContentID:
		return m.ContentID()
	case segment.FieldIndex:
		return m.Index()
	case segment.FieldStartSec:
		return m.StartSec()
	case segment.FieldEndSec:
		return m.EndSec()
	case segment.FieldDurationSec:
		return m.DurationSec()
	case segment.FieldState:
		return m.State()
	case segment.FieldAnalysisResult:
		return m.AnalysisResult()
	case segment.FieldModelUsed:
		return m.ModelUsed()
	case segment.FieldProcessingMs:
		return m.ProcessingMs()
	case segment.FieldError:
		return m.Error()
	case segment.FieldRetryCount:
		return m.RetryCount()
	case segment.FieldPromptVersion:
		return m.PromptVersion()
	case segment.FieldCreatedAt:
		return m.CreatedAt()
	case segment.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SegmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case segment.FieldContentID:
		return m.OldContentID(ctx)
	case segment.FieldIndex:
		return m.OldIndex(ctx)
	case segment.FieldStartSec:
		return m.OldStartSec(ctx)
	case segment.FieldEndSec:
		return m.OldEndSec(ctx)
	case segment.FieldDurationSec:
		return m.OldDurationSec(ctx)
	case segment.FieldState:
		return m.OldState(ctx)
	case segment.FieldAnalysisResult:
		return m.OldAnalysisResult(ctx)
	case segment.FieldModelUsed:
		return m.OldModelUsed(ctx)
	case segment.FieldProcessingMs:
		return m.OldProcessingMs(ctx)
	case segment.FieldError:
		return m.OldError(ctx)
	case segment.FieldRetryCount:
		return m.OldRetryCount(ctx)
	case segment.FieldPromptVersion:
		return m.OldPromptVersion(ctx)
	case segment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case segment.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Segment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SegmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case segment.FieldContentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentID(v)
		return nil
	case segment.FieldIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIndex(v)
		return nil
	case segment.FieldStartSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartSec(v)
		return nil
	case segment.FieldEndSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndSec(v)
		return nil
	case segment.FieldDurationSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSec(v)
		return nil
	case segment.FieldState:
		v, ok := value.(segment.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case segment.FieldAnalysisResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisResult(v)
		return nil
	case segment.FieldModelUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelUsed(v)
		return nil
	case segment.FieldProcessingMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingMs(v)
		return nil
	case segment.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case segment.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryCount(v)
		return nil
	case segment.FieldPromptVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptVersion(v)
		return nil
	case segment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case segment.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Segment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SegmentMutation) AddedFields() []string {
	var fields []string
	if m.addindex != nil {
		fields = append(fields, segment.FieldIndex)
	}
	if m.addstart_sec != nil {
		fields = append(fields, segment.FieldStartSec)
	}
	if m.addend_sec != nil {
		fields = append(fields, segment.FieldEndSec)
	}
	if m.addduration_sec != nil {
		fields = append(fields, segment.FieldDurationSec)
	}
	if m.addprocessing_ms != nil {
		fields = append(fields, segment.FieldProcessingMs)
	}
	if m.addretry_count != nil {
		fields = append(fields, segment.FieldRetryCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SegmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case segment.FieldIndex:
		return m.AddedIndex()
	case segment.FieldStartSec:
		return m.AddedStartSec()
	case segment.FieldEndSec:
		return m.AddedEndSec()
	case segment.FieldDurationSec:
		return m.AddedDurationSec()
	case segment.FieldProcessingMs:
		return m.AddedProcessingMs()
	case segment.FieldRetryCount:
		return m.AddedRetryCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SegmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case segment.FieldIndex:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIndex(v)
		return nil
	case segment.FieldStartSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStartSec(v)
		return nil
	case segment.FieldEndSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEndSec(v)
		return nil
	case segment.FieldDurationSec:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSec(v)
		return nil
	case segment.FieldProcessingMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingMs(v)
		return nil
	case segment.FieldRetryCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRetryCount(v)
		return nil
	}
	return fmt.Errorf("unknown Segment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SegmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(segment.FieldAnalysisResult) {
		fields = append(fields, segment.FieldAnalysisResult)
	}
	if m.FieldCleared(segment.FieldModelUsed) {
		fields = append(fields, segment.FieldModelUsed)
	}
	if m.FieldCleared(segment.FieldProcessingMs) {
		fields = append(fields, segment.FieldProcessingMs)
	}
	if m.FieldCleared(segment.FieldError) {
		fields = append(fields, segment.FieldError)
	}
	if m.FieldCleared(segment.FieldPromptVersion) {
		fields = append(fields, segment.FieldPromptVersion)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SegmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SegmentMutation) ClearField(name string) error {
	switch name {
	case segment.FieldAnalysisResult:
		m.ClearAnalysisResult()
		return nil
	case segment.FieldModelUsed:
		m.ClearModelUsed()
		return nil
	case segment.FieldProcessingMs:
		m.ClearProcessingMs()
		return nil
	case segment.FieldError:
		m.ClearError()
		return nil
	case segment.FieldPromptVersion:
		m.ClearPromptVersion()
		return nil
	}
	return fmt.Errorf("unknown Segment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SegmentMutation) ResetField(name string) error {
	switch name {
	case segment.FieldContentID:
		m.ResetContentID()
		return nil
	case segment.FieldIndex:
		m.ResetIndex()
		return nil
	case segment.FieldStartSec:
		m.ResetStartSec()
		return nil
	case segment.FieldEndSec:
		m.ResetEndSec()
		return nil
	case segment.FieldDurationSec:
		m.ResetDurationSec()
		return nil
	case segment.FieldState:
		m.ResetState()
		return nil
	case segment.FieldAnalysisResult:
		m.ResetAnalysisResult()
		return nil
	case segment.FieldModelUsed:
		m.ResetModelUsed()
		return nil
	case segment.FieldProcessingMs:
		m.ResetProcessingMs()
		return nil
	case segment.FieldError:
		m.ResetError()
		return nil
	case segment.FieldRetryCount:
		m.ResetRetryCount()
		return nil
	case segment.FieldPromptVersion:
		m.ResetPromptVersion()
		return nil
	case segment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case segment.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Segment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SegmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.content != nil {
		edges = append(edges, segment.EdgeContent)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SegmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case segment.EdgeContent:
		if id := m.content; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SegmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SegmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SegmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcontent {
		edges = append(edges, segment.EdgeContent)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SegmentMutation) EdgeCleared(name string) bool {
	switch name {
	case segment.EdgeContent:
		return m.clearedcontent
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SegmentMutation) ClearEdge(name string) error {
	switch name {
	case segment.EdgeContent:
		m.ClearContent()
		return nil
	}
	return fmt.Errorf("unknown Segment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SegmentMutation) ResetEdge(name string) error {
	switch name {
	case segment.EdgeContent:
		m.ResetContent()
		return nil
	}
	return fmt.Errorf("unknown Segment edge %s", name)
}
