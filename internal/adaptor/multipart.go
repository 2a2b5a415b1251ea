package adaptor

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"guesthouse-booking/internal/usecase"
)

// maxUploadSize caps the in-memory portion of multipart parsing.
const maxUploadSize = 32 << 20

// parseMultipartImages decodes the JSON payload from the "data" form field
// into payload and collects the uploaded files from the "images" field.
// Callers must invoke the returned cleanup function after the service call.
func parseMultipartImages(r *http.Request, payload any) ([]usecase.ImageFile, func(), error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	data := r.FormValue("data")
	if data == "" {
		return nil, nil, fmt.Errorf("missing data field in multipart form")
	}
	if err := json.Unmarshal([]byte(data), payload); err != nil {
		return nil, nil, fmt.Errorf("invalid JSON in data field: %w", err)
	}

	var opened []multipart.File
	cleanup := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	var images []usecase.ImageFile
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["images"] {
			file, err := header.Open()
			if err != nil {
				cleanup()
				return nil, nil, fmt.Errorf("open uploaded file %s: %w", header.Filename, err)
			}
			opened = append(opened, file)
			images = append(images, usecase.ImageFile{
				Filename:    header.Filename,
				ContentType: header.Header.Get("Content-Type"),
				Body:        file,
			})
		}
	}

	return images, cleanup, nil
}
