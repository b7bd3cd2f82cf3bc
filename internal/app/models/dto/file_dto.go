package dto

import "github.com/yigit/memberhub/internal/app/models"

// FileResponse is the general-file view
type FileResponse struct {
	ID           int64                 `json:"id" example:"5"`
	OriginalName string                `json:"originalName" example:"regulamin.pdf"`
	Size         int64                 `json:"size" example:"48213"`
	Type         models.FileType       `json:"type" example:"document"`
	Permissions  models.FilePermission `json:"permissions" example:"members_only"`
	UploadedBy   *string               `json:"uploadedBy,omitempty" example:"Jan Kowalski"`
	DownloadURL  string                `json:"downloadUrl" example:"/api/file/5/download"`
}

// TechnologyIconResponse is returned after an icon upload
type TechnologyIconResponse struct {
	ID   int64   `json:"id"`
	Name string  `json:"name"`
	Icon *string `json:"icon"`
}
