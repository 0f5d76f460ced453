package usecase

import (
	"context"
	"errors"
	"testing"

	"CapSwap/internal/domain/models"
	drepo "CapSwap/internal/domain/repository"
	"CapSwap/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarmPopulatesStore(t *testing.T) {
	provider := &fakeProvider{listRecords: sampleTickers()}
	store := repository.NewTickerCache(nil)
	w := NewCacheWarmer(provider, store, nil, 1000, newTestLogger(t))

	w.Warm(context.Background())

	assert.True(t, store.Ready())
	assert.Equal(t, len(sampleTickers()), store.Len())
	assert.Equal(t, 1, provider.listCalls)
}

func TestWarmProviderFailureKeepsPreviousContents(t *testing.T) {
	provider := &fakeProvider{listErr: errors.New("boom")}
	store := repository.NewTickerCache(nil)
	store.Replace(sampleTickers())
	w := NewCacheWarmer(provider, store, nil, 1000, newTestLogger(t))

	w.Warm(context.Background())

	assert.Equal(t, len(sampleTickers()), store.Len())
}

func TestWarmEmptyListKeepsPreviousContents(t *testing.T) {
	provider := &fakeProvider{listRecords: []models.TickerRecord{}}
	store := repository.NewTickerCache(nil)
	store.Replace(sampleTickers())
	w := NewCacheWarmer(provider, store, nil, 1000, newTestLogger(t))

	w.Refresh(context.Background())

	assert.Equal(t, len(sampleTickers()), store.Len())
}

func TestWarmSeedsFromSnapshotWhenProviderDown(t *testing.T) {
	provider := &fakeProvider{listErr: errors.New("boom")}
	snapshot := &fakeSnapshot{records: sampleTickers()[:2]}
	store := repository.NewTickerCache(nil)
	w := NewCacheWarmer(provider, store, snapshot, 1000, newTestLogger(t))

	w.Warm(context.Background())

	assert.True(t, store.Ready())
	assert.Equal(t, 2, store.Len())
}

func TestWarmUpstreamListOverwritesSnapshotSeed(t *testing.T) {
	provider := &fakeProvider{listRecords: sampleTickers()}
	snapshot := &fakeSnapshot{records: sampleTickers()[:1]}
	store := repository.NewTickerCache(nil)
	w := NewCacheWarmer(provider, store, snapshot, 1000, newTestLogger(t))

	w.Warm(context.Background())

	assert.Equal(t, len(sampleTickers()), store.Len())
	require.Len(t, snapshot.saved, 1)
	assert.Len(t, snapshot.saved[0], len(sampleTickers()))
}

func TestWarmSnapshotErrorIsIgnored(t *testing.T) {
	provider := &fakeProvider{listRecords: sampleTickers()}
	snapshot := &fakeSnapshot{loadErr: errors.New("redis down")}
	store := repository.NewTickerCache(nil)
	w := NewCacheWarmer(provider, store, snapshot, 1000, newTestLogger(t))

	w.Warm(context.Background())

	assert.Equal(t, len(sampleTickers()), store.Len())
}

var _ drepo.SnapshotStore = (*fakeSnapshot)(nil)
var _ drepo.QuoteProvider = (*fakeProvider)(nil)
