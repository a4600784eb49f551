package mock

import (
	"sort"

	"github.com/centraunit/simpledi"
)

// EventService depends on both DAOs through its injectable constructor.
type EventService struct {
	dao      EventDAO
	profiles ProfileDAO
}

func NewEventService(dao EventDAO, profiles ProfileDAO) *EventService {
	return &EventService{dao: dao, profiles: profiles}
}

func (s *EventService) DAO() EventDAO {
	return s.dao
}

func (s *EventService) ProfileDAO() ProfileDAO {
	return s.profiles
}

// InjectAmbiguityService declares two injectable constructors.
type InjectAmbiguityService struct {
	events   EventDAO
	profiles ProfileDAO
}

func NewInjectAmbiguityServiceWithEvents(events EventDAO) *InjectAmbiguityService {
	return &InjectAmbiguityService{events: events}
}

func NewInjectAmbiguityServiceWithProfiles(profiles ProfileDAO) *InjectAmbiguityService {
	return &InjectAmbiguityService{profiles: profiles}
}

// NoSuitableConstructorService only has a constructor that needs a count.
type NoSuitableConstructorService struct {
	count int
}

func NewNoSuitableConstructorService(count int) *NoSuitableConstructorService {
	return &NoSuitableConstructorService{count: count}
}

// PreMaxService finds the second largest distinct value of its sample.
type PreMaxService struct {
	sample []int
	count  int
}

var preMaxSample = []int{5, 7, 7, 6, 6, 6, 9, 9, 9, 6, 6, 6, 6, 6, 8, 8}

func NewPreMaxService() *PreMaxService {
	return &PreMaxService{sample: preMaxSample}
}

func NewPreMaxServiceWithCount(count int) *PreMaxService {
	return &PreMaxService{sample: preMaxSample, count: count}
}

// SecondMaxSorted sorts the distinct values and picks the one below the top.
func (s *PreMaxService) SecondMaxSorted() int {
	seen := make(map[int]struct{}, len(s.sample))
	distinct := make([]int, 0, len(s.sample))
	for _, v := range s.sample {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			distinct = append(distinct, v)
		}
	}
	if len(distinct) < 2 {
		return 0
	}
	sort.Ints(distinct)
	return distinct[len(distinct)-2]
}

// SecondMax finds the same value in a single pass.
func (s *PreMaxService) SecondMax() int {
	top, second := 0, 0
	for _, v := range s.sample {
		switch {
		case v > top:
			second = top
			top = v
		case v > second && v < top:
			second = v
		}
	}
	return second
}

// DeclareAll declares the constructors of every fixture type in c.
func DeclareAll(c *simpledi.Container) error {
	declarations := []func() error{
		func() error {
			return simpledi.Declare[*InMemoryEventDAO](c,
				simpledi.Constructor(NewInMemoryEventDAO),
				simpledi.Constructor(NewInMemoryEventDAOWithTests),
			)
		},
		func() error {
			return simpledi.Declare[*InMemoryProfileDAO](c,
				simpledi.Constructor(func() *InMemoryProfileDAO { return &InMemoryProfileDAO{} }),
			)
		},
		func() error {
			return simpledi.Declare[*EventService](c, simpledi.Injectable(NewEventService))
		},
		func() error {
			return simpledi.Declare[*InjectAmbiguityService](c,
				simpledi.Injectable(NewInjectAmbiguityServiceWithEvents),
				simpledi.Injectable(NewInjectAmbiguityServiceWithProfiles),
			)
		},
		func() error {
			return simpledi.Declare[*NoSuitableConstructorService](c,
				simpledi.Constructor(NewNoSuitableConstructorService),
			)
		},
		func() error {
			return simpledi.Declare[*PreMaxService](c,
				simpledi.Constructor(NewPreMaxService),
				simpledi.Constructor(NewPreMaxServiceWithCount),
			)
		},
	}

	for _, declare := range declarations {
		if err := declare(); err != nil {
			return err
		}
	}
	return nil
}

// BindEventGraph binds the singleton graph behind EventService.
func BindEventGraph(c *simpledi.Container) error {
	binds := []func(*simpledi.Container) error{
		simpledi.BindSingleton[TestDao, *InMemoryTestDao],
		simpledi.BindSingleton[EventDAO, *InMemoryEventDAO],
		simpledi.BindSingleton[ProfileDAO, *InMemoryProfileDAO],
		simpledi.BindSingleton[*EventService, *EventService],
	}
	for _, bind := range binds {
		if err := bind(c); err != nil {
			return err
		}
	}
	return nil
}
