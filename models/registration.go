package models

// PendingPhoto is a locally attached image held in the wizard session. It only
// becomes a persisted reference once the submission pipeline uploads it; the
// photos form value carries opaque local refs until then.
type PendingPhoto struct {
	Index       int    `json:"index" bson:"index"`
	ContentType string `json:"contentType" bson:"contentType"`
	Data        []byte `json:"data" bson:"data"`
}

// UpdateFieldsRequest is the payload for batched field updates.
type UpdateFieldsRequest struct {
	Fields map[string]any `json:"fields" binding:"required"`
}

// AttachPhotoRequest carries one base64-encoded image to hold in the session.
type AttachPhotoRequest struct {
	ContentType string `json:"contentType" binding:"required"`
	Data        []byte `json:"data" binding:"required"`
}

// JumpRequest targets a step by its 1-based number.
type JumpRequest struct {
	Step int `json:"step" binding:"required"`
}
