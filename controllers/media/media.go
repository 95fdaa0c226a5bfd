package mediaController

import (
	"fmt"
	"lms/config"
	"lms/middleware"
	"lms/utils"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UploadFile stores a single uploaded file under a generated unique name and
// returns its public URL
func UploadFile(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No file provided!", nil)
	}

	filename, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
	if err != nil {
		// Storage failures are rewrapped with the underlying message attached
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, fmt.Sprintf("Failed to store file: %v", err), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "File uploaded successfully!", fiber.Map{
		"filename": filename,
		"url":      "/media/" + filename,
		"full_url": config.AppConfig.PublicURL + "/media/" + filename,
	})
}

// StreamFile serves a stored file with byte-range support so video players
// can seek. Without a Range header the whole file is returned.
func StreamFile(c *fiber.Ctx) error {
	filename := filepath.Base(c.Params("filename"))
	filePath := filepath.Join(config.AppConfig.UploadDir, filename)

	info, err := os.Stat(filePath)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "File not found!", nil)
	}
	fileSize := info.Size()

	rangeHeader := c.Get("Range")
	if rangeHeader == "" {
		return c.SendFile(filePath)
	}

	rangeStart, rangeEnd, err := parseRange(rangeHeader, fileSize)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusRequestedRangeNotSatisfiable, false, "Invalid range!", nil)
	}

	contentLength := rangeEnd - rangeStart + 1

	f, err := os.Open(filePath)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to open file!", nil)
	}
	defer f.Close()

	data := make([]byte, contentLength)
	if _, err := f.ReadAt(data, rangeStart); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to read file!", nil)
	}

	c.Set("Content-Range", fmt.Sprintf("bytes %d-%d/%d", rangeStart, rangeEnd, fileSize))
	c.Set("Accept-Ranges", "bytes")
	c.Set("Content-Length", strconv.FormatInt(contentLength, 10))
	c.Set("Content-Type", "video/mp4")
	return c.Status(fiber.StatusPartialContent).Send(data)
}

// parseRange parses "bytes=start-end" where end may be omitted
func parseRange(header string, fileSize int64) (int64, int64, error) {
	spec := strings.TrimSpace(header)
	spec = spec[strings.LastIndex(spec, "=")+1:]

	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed range %q", header)
	}

	start, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || start < 0 {
		return 0, 0, fmt.Errorf("malformed range %q", header)
	}

	end := fileSize - 1
	if parts[1] != "" {
		end, err = strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("malformed range %q", header)
		}
	}
	if end > fileSize-1 {
		end = fileSize - 1
	}

	if start > end || start >= fileSize {
		return 0, 0, fmt.Errorf("range %q out of bounds", header)
	}

	return start, end, nil
}
