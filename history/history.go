// Package history keeps a registry of the episodes downloaded so far.
package history

import (
	"github.com/laradl/laradl/catalog"
	"github.com/laradl/laradl/filesystem"
	"github.com/laradl/laradl/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// cacher provides an abstracted, disk-backed registry of download records.
var cacher = gache.New[map[string]*SavedEpisode](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of download records from the persistent store.
func Get() (map[string]*SavedEpisode, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedEpisode), nil
	}
	return cached, nil
}

// List returns the records ordered by the time they were saved, oldest first.
func List() ([]*SavedEpisode, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := lo.Values(saved)
	slices.SortFunc(records, func(a, b *SavedEpisode) int {
		return a.SavedAt.Compare(b.SavedAt)
	})
	return records, nil
}

// Save records that episode was written to path with the given size.
// Saving the same episode again replaces the previous record.
func Save(episode *catalog.Episode, path string, size int64) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := newSavedEpisode(episode, path, size)
	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a specific record from the registry.
func Remove(episode *SavedEpisode) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, episode.encode())
	return cacher.Set(saved)
}
