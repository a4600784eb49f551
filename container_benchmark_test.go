package simpledi_test

import (
	"sync"
	"testing"

	"github.com/centraunit/simpledi"
	"github.com/centraunit/simpledi/mock"
)

func BenchmarkBinding(b *testing.B) {
	b.Run("PrototypeBinding", func(b *testing.B) {
		c := simpledi.New()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = simpledi.Bind[mock.ProfileDAO, *mock.InMemoryProfileDAO](c)
		}
	})

	b.Run("SingletonBinding", func(b *testing.B) {
		c := simpledi.New()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = simpledi.BindSingleton[mock.ProfileDAO, *mock.InMemoryProfileDAO](c)
		}
	})
}

func BenchmarkResolution(b *testing.B) {
	b.Run("PrototypeResolution", func(b *testing.B) {
		c := simpledi.New()
		_ = mock.DeclareAll(c)
		_ = simpledi.Bind[mock.ProfileDAO, *mock.InMemoryProfileDAO](c)
		provider, _ := simpledi.GetProvider[mock.ProfileDAO](c)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = provider.Get()
		}
	})

	b.Run("SingletonResolution", func(b *testing.B) {
		c := simpledi.New()
		_ = mock.DeclareAll(c)
		_ = simpledi.BindSingleton[mock.ProfileDAO, *mock.InMemoryProfileDAO](c)
		provider, _ := simpledi.GetProvider[mock.ProfileDAO](c)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = provider.Get()
		}
	})

	b.Run("PlanBuilding", func(b *testing.B) {
		c := simpledi.New()
		_ = declareDiamond(c)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = simpledi.GetProvider[*diamondTop](c)
		}
	})
}

func BenchmarkComplexResolution(b *testing.B) {
	b.Run("DiamondPrototype", func(b *testing.B) {
		c := simpledi.New()
		_ = declareDiamond(c)
		provider, _ := simpledi.GetProvider[*diamondTop](c)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = provider.Get()
		}
	})

	b.Run("EventServiceSingletonGraph", func(b *testing.B) {
		c := simpledi.New()
		_ = mock.DeclareAll(c)
		_ = simpledi.Declare[*mock.InMemoryEventDAO](c, simpledi.Injectable(mock.NewInMemoryEventDAOWithTests))
		_ = mock.BindEventGraph(c)
		_ = simpledi.Bind[*mock.EventService, *mock.EventService](c)
		provider, _ := simpledi.GetProvider[*mock.EventService](c)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = provider.Get()
		}
	})
}

func BenchmarkConcurrentOperations(b *testing.B) {
	b.Run("ConcurrentSingletonResolution", func(b *testing.B) {
		c := simpledi.New()
		_ = mock.DeclareAll(c)
		_ = simpledi.BindSingleton[mock.ProfileDAO, *mock.InMemoryProfileDAO](c)
		provider, _ := simpledi.GetProvider[mock.ProfileDAO](c)
		var wg sync.WaitGroup
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			wg.Add(5)
			for j := 0; j < 5; j++ {
				go func() {
					defer wg.Done()
					_, _ = provider.Get()
				}()
			}
			wg.Wait()
		}
	})
}
