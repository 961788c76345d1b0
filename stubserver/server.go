// Package stubserver is a fixture backend for local frontend development.
// It serves the documented recruiting-analytics surface with canned data
// and an in-memory synonym store; nothing is computed or persisted.
package stubserver

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"hirescope/client"
	"hirescope/config"
)

// NewRouter constructs a Gin engine with the full fixture surface.
func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	s := &store{synonyms: seedSynonyms()}

	r.POST(config.ComparisonPath+"/compare-multiple", handleCompare)
	r.GET(config.TaxonomyPath, handleTaxonomies)
	r.GET(config.FunnelPath, handleFunnel)
	r.GET(config.MetricsPath, handleMetrics)

	r.GET(config.SynonymPath+"/", s.handleList)
	r.POST(config.SynonymPath, s.handleCreate)
	r.PUT(config.SynonymPath+"/:id", s.handleUpdate)
	r.DELETE(config.SynonymPath+"/:id", s.handleDelete)

	return r
}

func handleCompare(c *gin.Context) {
	var req client.ComparisonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if len(req.ResumeIDs) < config.MinResumesPerComparison || len(req.ResumeIDs) > config.MaxResumesPerComparison {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume_ids must contain 2 to 5 entries"})
		return
	}
	if req.VacancyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vacancy_id is required"})
		return
	}

	c.JSON(http.StatusOK, comparisonFixture(req))
}

func handleTaxonomies(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	c.JSON(http.StatusOK, taxonomyFixture(c.Query("industry"), limit))
}

func handleFunnel(c *gin.Context) {
	c.JSON(http.StatusOK, funnelFixture())
}

func handleMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, metricsFixture())
}

// store holds synonym entries in memory for the lifetime of the process.
type store struct {
	mu       sync.Mutex
	synonyms map[string]client.SynonymEntry
}

func (s *store) handleList(c *gin.Context) {
	orgID := c.Query("organization_id")
	if orgID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "organization_id is required"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]client.SynonymEntry, 0)
	for _, e := range s.synonyms {
		if e.OrganizationID == orgID {
			entries = append(entries, e)
		}
	}

	c.JSON(http.StatusOK, gin.H{"synonyms": entries})
}

func (s *store) handleCreate(c *gin.Context) {
	var p client.SynonymPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	now := time.Now().UTC()
	entry := client.SynonymEntry{
		ID:             uuid.NewString(),
		OrganizationID: p.OrganizationID,
		Skill:          p.Skill,
		Synonyms:       p.Synonyms,
		Context:        p.Context,
		Active:         p.Active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	s.mu.Lock()
	s.synonyms[entry.ID] = entry
	s.mu.Unlock()

	c.JSON(http.StatusOK, entry)
}

func (s *store) handleUpdate(c *gin.Context) {
	var p client.SynonymPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.synonyms[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "synonym entry not found"})
		return
	}

	// Full replace of synonyms and context
	entry.Skill = p.Skill
	entry.Synonyms = p.Synonyms
	entry.Context = p.Context
	entry.Active = p.Active
	entry.UpdatedAt = time.Now().UTC()
	s.synonyms[entry.ID] = entry

	c.JSON(http.StatusOK, entry)
}

func (s *store) handleDelete(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := c.Param("id")
	if _, ok := s.synonyms[id]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "synonym entry not found"})
		return
	}
	delete(s.synonyms, id)

	c.JSON(http.StatusOK, gin.H{"status": "deleted", "id": id})
}
