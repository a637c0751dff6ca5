package model

const (
	TaskSendWelcomeEmail = "send_welcome_email"
	TaskS3Upload         = "s3_upload"
)

type WelcomeEmailArgs struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// S3UploadArgs : Body кодируется в base64 при сериализации
type S3UploadArgs struct {
	Key         string `json:"key"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}
