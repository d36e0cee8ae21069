package review

type CreateReviewRequest struct {
	PackageID int64  `json:"package_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}
