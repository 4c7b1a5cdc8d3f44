package dl

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"net"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Laky-64/gologging"

	"github.com/zuchzub/GroupGuard/pkg/config"
)

const (
	defaultRequestTimeout  = 30 * time.Second
	defaultConnectTimeout  = 10 * time.Second
	downloadTimeout        = 300 * time.Second
	maxRetries             = 2
	initialBackoff         = 1 * time.Second
	defaultDownloadDirPerm = 0755
)

var client = &http.Client{
	Timeout: defaultRequestTimeout,
	Transport: &http.Transport{
		TLSHandshakeTimeout:   defaultConnectTimeout,
		ResponseHeaderTimeout: defaultRequestTimeout,
		IdleConnTimeout:       90 * time.Second,
		MaxIdleConns:          100,
	},
}

// sendRequest performs an HTTP request with retry and exponential backoff for
// temporary network errors and server-side failures.
func sendRequest(ctx context.Context, method, fullURL string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "*/*")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	var resp *http.Response
	var reqErr error
	backoff := initialBackoff

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff)
			backoff *= 2
		}

		resp, reqErr = client.Do(req)
		if reqErr == nil {
			if resp.StatusCode < 500 {
				return resp, nil
			}
			if err := resp.Body.Close(); err != nil {
				gologging.WarnF("failed to close response body: %v", err)
			}
			reqErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		} else if isTemporaryError(reqErr) {
			gologging.InfoF("Temporary error on attempt %d/%d: %v", attempt+1, maxRetries, reqErr)
			continue
		} else {
			break
		}
	}

	if reqErr == nil {
		reqErr = fmt.Errorf("request failed after %d attempts", maxRetries)
	}
	return nil, fmt.Errorf("request failed: %w", reqErr)
}

func isTemporaryError(err error) bool {
	if netErr, ok := err.(net.Error); ok {
		return netErr.Timeout() || netErr.Temporary()
	}
	return false
}

// generateUniqueName creates a pseudo-random filename from the current
// timestamp and a random number.
func generateUniqueName(ext string) string {
	n, _ := rand.Int(rand.Reader, big.NewInt(99999))
	return fmt.Sprintf("%d_%05d%s", time.Now().UnixNano(), n.Int64(), ext)
}

// sanitizeFilename removes path separators and characters the filesystem
// rejects.
func sanitizeFilename(fileName string) string {
	fileName = strings.ReplaceAll(fileName, "/", "")
	fileName = strings.ReplaceAll(fileName, "\\", "")
	fileName = regexp.MustCompile(`[<>:"/\\|?*]`).ReplaceAllString(fileName, "")
	return strings.TrimSpace(fileName)
}

// extractFilename parses a Content-Disposition header for the original
// filename, supporting both "filename=" and "filename*=" forms.
func extractFilename(contentDisp string) string {
	if contentDisp == "" {
		return ""
	}
	re := regexp.MustCompile(`filename\*?=(?:UTF-8'')?([^;]+)`)
	matches := re.FindStringSubmatch(contentDisp)
	if len(matches) > 1 {
		if decoded, err := url.QueryUnescape(matches[1]); err == nil {
			return decoded
		}
	}
	return ""
}

// determineFilename picks a download path, preferring the Content-Disposition
// header, then the URL path, then a generated name.
func determineFilename(urlStr, contentDisp string) string {
	if filename := extractFilename(contentDisp); filename != "" {
		return filepath.Join(config.Conf.DownloadsDir, sanitizeFilename(filename))
	}

	if parsedURL, err := url.Parse(urlStr); err == nil {
		filename := path.Base(parsedURL.Path)
		if filename != "" && filename != "/" && !strings.Contains(filename, "?") {
			return filepath.Join(config.Conf.DownloadsDir, sanitizeFilename(filename))
		}
	}

	return filepath.Join(config.Conf.DownloadsDir, generateUniqueName(".tmp"))
}

func writeToFile(filename string, data io.Reader) error {
	out, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create the file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, data); err != nil {
		return fmt.Errorf("failed to write to the file: %w", err)
	}
	return nil
}

// DownloadFile downloads a URL to the downloads directory and returns the
// final file path. An existing file is reused unless overwrite is set.
func DownloadFile(ctx context.Context, urlStr, fileName string, overwrite bool) (string, error) {
	if urlStr == "" {
		return "", errors.New("an empty URL was provided")
	}

	ctx, cancel := context.WithTimeout(ctx, downloadTimeout)
	defer cancel()

	resp, err := sendRequest(ctx, http.MethodGet, urlStr, nil, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code received: %d", resp.StatusCode)
	}

	if fileName == "" {
		fileName = determineFilename(urlStr, resp.Header.Get("Content-Disposition"))
	}

	if !overwrite {
		if _, err := os.Stat(fileName); err == nil {
			return fileName, nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(fileName), defaultDownloadDirPerm); err != nil {
		return "", fmt.Errorf("failed to create the directory: %w", err)
	}

	// Download to a .part file so a failed transfer never leaves a half
	// written track behind.
	tempPath := fileName + ".part"
	if err := writeToFile(tempPath, resp.Body); err != nil {
		return "", err
	}
	if err := os.Rename(tempPath, fileName); err != nil {
		return "", fmt.Errorf("failed to rename the temporary file: %w", err)
	}

	return fileName, nil
}
