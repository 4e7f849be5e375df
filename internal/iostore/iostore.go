// Package iostore is for persisting analysis results and run history.
package iostore

import (
	"sync"

	"github.com/apolabs/autoscope/internal/contract"
)

// StoreManagerImpl manages the result cache and run tracking stores.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	results      contract.CacheStore
	runs         contract.RunStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetResultStore returns the result CacheStore.
func (mgr *StoreManagerImpl) GetResultStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.results
}

// GetRunStore returns the run RunStore.
func (mgr *StoreManagerImpl) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
