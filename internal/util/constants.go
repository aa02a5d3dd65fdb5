package util

const (
	TimeFormat = "2006-01-02 15:04:05"
	// 图表 X 轴的展示格式，如 "02 Mar"
	ChartDateFormat = "02 Jan"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

// 文件上传相关常量
const (
	MimeAudio = "audio/"
	MimeImage = "image/"
)

var (
	AllowedAudioExtensions = []string{".mp3", ".wav", ".m4a", ".ogg", ".webm"}
)
