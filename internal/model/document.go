package model

// UploadedDocument is the extracted text of a user-uploaded file.
// It is produced once by the upload handler and never mutated after.
type UploadedDocument struct {
	FileName string `json:"file_name"`
	Content  string `json:"content"`
	Preview  string `json:"preview"`
}
