package client

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// deleteState tracks a pending optimistic delete through its two phases:
// the tentative local removal, then confirmation or rollback once the
// server responds.
type deleteState int

const (
	deleteTentative deleteState = iota
	deleteConfirmed
	deleteRolledBack
)

// pendingDelete remembers enough to undo a tentative removal.
type pendingDelete struct {
	item  MailItem
	index int
	state deleteState
}

// MailItemCache holds the organization's mail item list locally. Deletes are
// optimistic: the item leaves the cached list before the server confirms, and
// comes back at its old position if the server rejects the delete.
type MailItemCache struct {
	client  *Client
	session *Session
	log     *logrus.Entry

	mu      sync.RWMutex
	items   []MailItem
	pending map[uuid.UUID]*pendingDelete
}

// NewMailItemCache creates a cache bound to the session's current organization.
func NewMailItemCache(client *Client, session *Session) *MailItemCache {
	return &MailItemCache{
		client:  client,
		session: session,
		log:     logrus.WithField("component", "mailitem_cache"),
		pending: make(map[uuid.UUID]*pendingDelete),
	}
}

// Load replaces the cached list with a fresh fetch.
func (c *MailItemCache) Load(ctx context.Context) error {
	orgID := c.session.CurrentID()
	if orgID == uuid.Nil {
		c.mu.Lock()
		c.items = nil
		c.mu.Unlock()
		return nil
	}

	list, err := c.client.ListMailItems(ctx, orgID, 1, 100)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.items = list.Items
	c.mu.Unlock()
	return nil
}

// Items returns a snapshot of the cached list.
func (c *MailItemCache) Items() []MailItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]MailItem, len(c.items))
	copy(out, c.items)
	return out
}

// Delete removes a mail item. The cached entry is removed immediately; if the
// server rejects the delete the entry is restored at its previous position.
// A 404 counts as confirmation, the item is already gone server-side.
func (c *MailItemCache) Delete(ctx context.Context, id uuid.UUID) error {
	mutation, ok := c.removeTentatively(id)
	if !ok {
		return nil
	}

	err := c.client.DeleteMailItem(ctx, c.session.CurrentID(), id)
	if err != nil && !IsNotFound(err) {
		c.rollback(id, mutation)
		return err
	}

	c.confirm(id, mutation)
	return nil
}

// removeTentatively splices the item out of the cached list and records the
// pending mutation. Returns false when the id is not cached (or already has a
// delete in flight).
func (c *MailItemCache) removeTentatively(id uuid.UUID) (*pendingDelete, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, inFlight := c.pending[id]; inFlight {
		return nil, false
	}

	for i, item := range c.items {
		if item.ID == id {
			mutation := &pendingDelete{item: item, index: i, state: deleteTentative}
			c.pending[id] = mutation
			c.items = append(c.items[:i], c.items[i+1:]...)
			return mutation, true
		}
	}
	return nil, false
}

func (c *MailItemCache) confirm(id uuid.UUID, mutation *pendingDelete) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mutation.state = deleteConfirmed
	delete(c.pending, id)
}

// rollback restores the item at its old index, clamped in case the list
// shrank while the delete was in flight.
func (c *MailItemCache) rollback(id uuid.UUID, mutation *pendingDelete) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mutation.state = deleteRolledBack
	delete(c.pending, id)

	index := mutation.index
	if index > len(c.items) {
		index = len(c.items)
	}
	c.items = append(c.items[:index], append([]MailItem{mutation.item}, c.items[index:]...)...)
	c.log.WithField("mail_item_id", id).Warn("delete rejected by server, restored cached entry")
}

// Notify marks the item notified and updates the cached entry in place.
func (c *MailItemCache) Notify(ctx context.Context, id uuid.UUID) (*MailItem, error) {
	item, err := c.client.NotifyMailItem(ctx, c.session.CurrentID(), id)
	if err != nil {
		return nil, err
	}
	c.replace(*item)
	return item, nil
}

// Deliver marks the item delivered and updates the cached entry in place.
func (c *MailItemCache) Deliver(ctx context.Context, id uuid.UUID) (*MailItem, error) {
	item, err := c.client.DeliverMailItem(ctx, c.session.CurrentID(), id)
	if err != nil {
		return nil, err
	}
	c.replace(*item)
	return item, nil
}

func (c *MailItemCache) replace(item MailItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == item.ID {
			c.items[i] = item
			return
		}
	}
}
