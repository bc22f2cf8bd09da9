package badger

// Repositories bundles the per-family repositories and the profile store
// opened against one backend.
type Repositories struct {
	Journal    *JournalRepository
	Documents  *DocumentRepository
	Medical    *MedicalRepository
	Milestones *MilestoneRepository
	Growth     *GrowthRepository
	Profile    *ProfileStore
}

// NewRepositories opens every repository against the given backend.
// On failure, repositories opened so far are closed.
func NewRepositories(backend *Backend) (*Repositories, error) {
	repos := &Repositories{}

	var err error
	if repos.Journal, err = NewJournalRepository(backend); err != nil {
		return nil, err
	}
	if repos.Documents, err = NewDocumentRepository(backend); err != nil {
		repos.Close()
		return nil, err
	}
	if repos.Medical, err = NewMedicalRepository(backend); err != nil {
		repos.Close()
		return nil, err
	}
	if repos.Milestones, err = NewMilestoneRepository(backend); err != nil {
		repos.Close()
		return nil, err
	}
	if repos.Growth, err = NewGrowthRepository(backend); err != nil {
		repos.Close()
		return nil, err
	}
	repos.Profile = NewProfileStore(backend)

	return repos, nil
}

// Close closes every opened repository. The backend stays open; the caller
// owns its lifecycle.
func (r *Repositories) Close() error {
	var firstErr error
	closeRepo := func(c interface{ Close() error }) {
		if c == nil {
			return
		}
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if r.Profile != nil {
		closeRepo(r.Profile)
	}
	if r.Growth != nil {
		closeRepo(r.Growth)
	}
	if r.Milestones != nil {
		closeRepo(r.Milestones)
	}
	if r.Medical != nil {
		closeRepo(r.Medical)
	}
	if r.Documents != nil {
		closeRepo(r.Documents)
	}
	if r.Journal != nil {
		closeRepo(r.Journal)
	}
	return firstErr
}
