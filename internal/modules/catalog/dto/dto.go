package dto

type CreateProjectRequest struct {
	Name          string `json:"name" binding:"required"`
	Slug          string `json:"slug"`
	Description   string `json:"description"`
	RestrictUsers bool   `json:"restrict_users"`
	CreatedBy     string `json:"created_by"`
}

type UpdateProjectRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	RestrictUsers *bool   `json:"restrict_users"`
	ModifiedBy    string  `json:"modified_by"`
}

type CreateFolderRequest struct {
	Title          string `json:"title" binding:"required"`
	Slug           string `json:"slug"`
	Description    string `json:"description"`
	ParentFolderID *uint  `json:"parent_folder_id"`
	CreatedBy      string `json:"created_by"`
}

type UpdateFolderRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	ModifiedBy  string  `json:"modified_by"`
}

type CreateImageRequest struct {
	Name       string `json:"name" binding:"required"`
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Encoding   string `json:"encoding" binding:"required"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	FolderID   *uint  `json:"folder_id"`
	MetadataID *uint  `json:"metadata_id"`
	CreatedBy  string `json:"created_by"`
}

type UpdateImageRequest struct {
	Title       *string `json:"title"`
	IsPublished *bool   `json:"is_published"`
	ModifiedBy  string  `json:"modified_by"`
}

type BatchDeleteRequest struct {
	IDs []uint `json:"ids" binding:"required"`
}
