package usecase

import (
	"context"
	"sync"

	"github.com/aroundme-service/internal/domain"
	"github.com/aroundme-service/internal/domain/repository"
	"golang.org/x/sync/semaphore"
)

const defaultMaxConcurrency = 8

// limitedMaps ограничивает число одновременных запросов к провайдеру карт.
// Ограничение стоит на вызовах, а не на горутинах, поэтому вложенный
// fan-out (категории -> места -> directions) не может заблокировать сам себя.
type limitedMaps struct {
	next repository.MapsRepository
	sem  *semaphore.Weighted
}

func newLimitedMaps(next repository.MapsRepository, maxConcurrency int) *limitedMaps {
	if maxConcurrency <= 0 {
		maxConcurrency = defaultMaxConcurrency
	}
	return &limitedMaps{
		next: next,
		sem:  semaphore.NewWeighted(int64(maxConcurrency)),
	}
}

func (l *limitedMaps) Geocode(ctx context.Context, req domain.GeocodeRequest) (*domain.GeocodeResponse, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer l.sem.Release(1)
	return l.next.Geocode(ctx, req)
}

func (l *limitedMaps) Directions(ctx context.Context, req domain.DirectionsRequest) (*domain.DirectionsResponse, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer l.sem.Release(1)
	return l.next.Directions(ctx, req)
}

func (l *limitedMaps) PlacesNearby(ctx context.Context, req domain.PlacesNearbyRequest) (*domain.PlacesNearbyResponse, error) {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer l.sem.Release(1)
	return l.next.PlacesNearby(ctx, req)
}

// forEach запускает fn(i) для i в [0, n) параллельно и ждёт завершения всех.
// Результаты пишутся вызывающим по индексу, порядок входа сохраняется.
func forEach(n int, fn func(i int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(idx int) {
			defer wg.Done()
			fn(idx)
		}(i)
	}
	wg.Wait()
}
