package dto

// CreateExportRequest queues a registry export job.
type CreateExportRequest struct {
	Type   string `json:"type" binding:"required"`
	Format string `json:"format" binding:"required"`
	ClubID *int64 `json:"club_id"`
}
