package history

import "github.com/rs/zerolog"

// CleanupJob prunes archived runs past the retention window. It
// satisfies the scheduler's Job interface.
type CleanupJob struct {
	repo          *Repository
	retentionDays int
	log           zerolog.Logger
}

// NewCleanupJob creates the retention job.
func NewCleanupJob(repo *Repository, retentionDays int, log zerolog.Logger) *CleanupJob {
	return &CleanupJob{
		repo:          repo,
		retentionDays: retentionDays,
		log:           log.With().Str("job", "history_cleanup").Logger(),
	}
}

func (j *CleanupJob) Name() string {
	return "history_cleanup"
}

func (j *CleanupJob) Run() error {
	deleted, err := j.repo.Prune(j.retentionDays)
	if err != nil {
		return err
	}
	j.log.Debug().Int64("deleted", deleted).Msg("History retention pass complete")
	return nil
}
