package dto

type SystemInfoResponse struct {
	OS           string `json:"os"`
	Arch         string `json:"arch"`
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
}

type ServerStatsResponse struct {
	ProjectCount        int64              `json:"project_count"`
	FolderCount         int64              `json:"folder_count"`
	ImageCount          int64              `json:"image_count"`
	PublishedImageCount int64              `json:"published_image_count"`
	ActiveWorkspaces    int                `json:"active_workspaces"`
	SystemInfo          SystemInfoResponse `json:"system_info"`
}
