package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"skillmatch/internal/domain/skill"

	"go.uber.org/zap"
)

// HTTPSource queries an external job-provider endpoint speaking a small
// JSON search contract. It is the default primary-source implementation;
// anything matching the JobSource interface can stand in for it.
type HTTPSource struct {
	name    string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

type searchRequest struct {
	Skills   []string `json:"skills"`
	Title    string   `json:"title,omitempty"`
	Location string   `json:"location,omitempty"`
}

type searchResponse struct {
	Jobs []searchResponseJob `json:"jobs"`
}

type searchResponseJob struct {
	Title           string              `json:"title"`
	Company         string              `json:"company"`
	Location        string              `json:"location"`
	Description     string              `json:"description"`
	ApplicationLink string              `json:"application_link"`
	Platform        string              `json:"platform"`
	RequiredSkills  []searchResponseReq `json:"required_skills"`
}

type searchResponseReq struct {
	Name       string `json:"name"`
	Importance string `json:"importance"`
}

func NewHTTPSource(baseURL string, logger *zap.Logger) *HTTPSource {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")

	name := baseURL
	if u, err := url.Parse(baseURL); err == nil && u.Host != "" {
		name = u.Host
	}

	return &HTTPSource{
		name:    name,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

func (s *HTTPSource) Name() string {
	return s.name
}

func (s *HTTPSource) Search(ctx context.Context, q Query) ([]Job, error) {
	if s == nil || s.baseURL == "" {
		return nil, nil
	}

	body, err := json.Marshal(searchRequest{
		Skills:   q.Skills,
		Title:    q.Title,
		Location: q.Location,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/search", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("source %s: unexpected status %d", s.name, resp.StatusCode)
	}

	var out searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("source %s: decode: %w", s.name, err)
	}

	jobs := make([]Job, 0, len(out.Jobs))
	for _, j := range out.Jobs {
		if strings.TrimSpace(j.Title) == "" {
			continue
		}

		reqs := make([]Requirement, 0, len(j.RequiredSkills))
		for _, r := range j.RequiredSkills {
			if strings.TrimSpace(r.Name) == "" {
				continue
			}
			reqs = append(reqs, Requirement{
				Name:       strings.TrimSpace(r.Name),
				Importance: skill.ParseImportance(r.Importance),
			})
		}

		platform := strings.TrimSpace(j.Platform)
		if platform == "" {
			platform = s.name
		}

		jobs = append(jobs, Job{
			Title:           strings.TrimSpace(j.Title),
			Company:         strings.TrimSpace(j.Company),
			Location:        strings.TrimSpace(j.Location),
			Description:     j.Description,
			ApplicationLink: strings.TrimSpace(j.ApplicationLink),
			Platform:        platform,
			RequiredSkills:  reqs,
		})
	}

	if s.logger != nil {
		s.logger.Debug("source search completed",
			zap.String("source", s.name),
			zap.Int("jobs", len(jobs)),
		)
	}
	return jobs, nil
}
