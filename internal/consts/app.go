package consts

const (
	ApplicationName    = "DAM Workspace Server"
	ApplicationVersion = "v1.0.0"
)
