package api

import (
	"encoding/json"
	"io"
	"net/http"
	"os/exec"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/droverhq/drover/pkg/credentials"
)

const maxCredentialsBody = 64 << 10 // 64 KiB

// credentialsStatus serves GET /api/credentials/status. No token material
// ever leaves this endpoint.
func (s *Server) credentialsStatus(c *gin.Context) {
	status := s.deps.Credentials.Status()

	_, lookErr := exec.LookPath(s.deps.Config.CLI.Binary)
	c.JSON(http.StatusOK, gin.H{
		"credentials":   status,
		"cli_available": lookErr == nil,
	})
}

// uploadCredentials serves POST /api/credentials/upload. Accepts either a
// multipart form with a "file" field or the JSON artifact as the raw body.
func (s *Server) uploadCredentials(c *gin.Context) {
	data, err := s.credentialsBody(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var creds credentials.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "credentials file is not valid JSON"})
		return
	}

	if err := s.deps.Credentials.Save(creds); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "saved"})
}

func (s *Server) credentialsBody(c *gin.Context) ([]byte, error) {
	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		file, _, err := c.Request.FormFile("file")
		if err != nil {
			return nil, err
		}
		defer file.Close()
		return io.ReadAll(io.LimitReader(file, maxCredentialsBody))
	}
	return io.ReadAll(io.LimitReader(c.Request.Body, maxCredentialsBody))
}
