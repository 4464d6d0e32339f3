package parser

import "github.com/toyz/springhttp/internal/models"

// ControllerExtractor turns the text of one source file into controller metadata.
// ok is false when the file is not a controller.
type ControllerExtractor interface {
	Parse(filePath, text string) (info *models.ControllerInfo, ok bool)
}
