package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 图标上传相关常量
const (
	MimeImage = "image/"
)

var (
	AllowedIconExtensions = []string{".png", ".jpg", ".jpeg", ".svg", ".webp"}
)
