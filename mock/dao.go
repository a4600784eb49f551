package mock

import (
	"time"
)

// EventDAOInitDelay simulates a slow data source in NewInMemoryEventDAO.
const EventDAOInitDelay = 100 * time.Millisecond

// Entity is a stored record.
type Entity struct {
	ID string
}

// Core interfaces
type EventDAO interface {
	Events() []Entity
}

type ProfileDAO interface {
	Profiles() []Entity
}

type TestDao interface {
	Tests() []Entity
}

// In-memory implementations
type InMemoryEventDAO struct {
	tests   TestDao
	records []Entity
}

// NewInMemoryEventDAO blocks for EventDAOInitDelay before returning.
func NewInMemoryEventDAO() *InMemoryEventDAO {
	time.Sleep(EventDAOInitDelay)
	return &InMemoryEventDAO{}
}

func NewInMemoryEventDAOWithTests(tests TestDao) *InMemoryEventDAO {
	return &InMemoryEventDAO{tests: tests}
}

func (d *InMemoryEventDAO) Events() []Entity {
	return append([]Entity{}, d.records...)
}

func (d *InMemoryEventDAO) TestDao() TestDao {
	return d.tests
}

type InMemoryProfileDAO struct {
	records []Entity
}

func (d *InMemoryProfileDAO) Profiles() []Entity {
	return append([]Entity{}, d.records...)
}

type InMemoryTestDao struct {
	records []Entity
}

func (d *InMemoryTestDao) Tests() []Entity {
	return append([]Entity{}, d.records...)
}
