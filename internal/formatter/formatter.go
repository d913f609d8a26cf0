// package formatter provides functions to export watchlist data to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/avelasco/reel/internal/models"
)

const dateLayout = "2006-01-02"

func ratingString(r *int) string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%d", *r)
}

// ExportToCSV converts entries to CSV format with columns: ID, IMDb ID, Title, Year, Director, Genre, Status, Rating, Date Added
func ExportToCSV(entries []*models.Entry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "IMDb ID", "Title", "Year", "Director", "Genre", "Status", "Rating", "Date Added"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range entries {
		movie := entry.Movie()
		record := []string{
			entry.ID(),
			movie.ImdbID,
			movie.Title,
			movie.Year,
			movie.Director,
			movie.Genre,
			string(entry.Status()),
			ratingString(entry.Rating()),
			entry.DateAdded().Format(dateLayout),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown renders a user's entries as a Markdown document grouped by status.
func ExportToMarkdown(username string, entries []*models.Entry) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s's Watchlist\n\n", username))
	buf.WriteString(fmt.Sprintf("**Entries**: %d\n", len(entries)))
	buf.WriteString(fmt.Sprintf("**Exported**: %s\n\n", time.Now().Format(dateLayout)))

	for _, status := range []models.Status{models.WantToWatch, models.Watched} {
		buf.WriteString(fmt.Sprintf("## %s\n\n", status))

		n := 0
		for _, entry := range entries {
			if entry.Status() != status {
				continue
			}
			n++
			movie := entry.Movie()
			line := fmt.Sprintf("%d. **%s** (%s)", n, movie.Title, movie.Year)
			if movie.Director != "" {
				line += fmt.Sprintf(" • dir. %s", movie.Director)
			}
			if r := entry.Rating(); r != nil {
				line += fmt.Sprintf(" • %s", stars(*r))
			}
			buf.WriteString(line + "\n")
		}

		if n == 0 {
			buf.WriteString("_Empty_\n")
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ExportToText converts entries to plain text format
func ExportToText(username string, entries []*models.Entry) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Watchlist for %s (%d entries)\n\n", username, len(entries)))

	for i, entry := range entries {
		movie := entry.Movie()
		buf.WriteString(fmt.Sprintf("%d. [%s] %s (%s)", i+1, entry.Status(), movie.Title, movie.Year))
		if r := entry.Rating(); r != nil {
			buf.WriteString(fmt.Sprintf(" %s", stars(*r)))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

func stars(n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += "★"
	}
	return out
}

// DownloadImage downloads a poster image from the given URL and returns the raw bytes.
// The provider uses the literal "N/A" for missing posters.
func DownloadImage(url string) ([]byte, error) {
	if url == "" || url == "N/A" {
		return nil, fmt.Errorf("no poster available")
	}

	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("failed to download image: status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}

	return data, nil
}

// SaveToFile writes exported data to the given path.
func SaveToFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}
