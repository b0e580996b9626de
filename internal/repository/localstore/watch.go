package localstore

import (
	"context"
	"path/filepath"

	"storefront-gateway/internal/domain"
	"storefront-gateway/pkg/logger"

	"github.com/fsnotify/fsnotify"
)

// Watch observes the backing file for rewrites by other processes and
// publishes a reload notification after re-reading it. This is the
// secondary sync signal: two gateways sharing a store file converge on
// last-writer-wins with no ordering guarantee between them.
func (s *Store) Watch(ctx context.Context, pub domain.Publisher) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	// Watch the directory: atomic rename replaces the file node, so a
	// watch on the file itself would go stale after the first write.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		base := filepath.Base(s.path)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != base {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
					continue
				}
				s.Reload()
				pub.Publish(domain.TopicStoreReloaded, s.path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn().Err(err).Msg("Store watch error")
			}
		}
	}()

	return nil
}
