package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/walletlens/walletlens/internal/addr"
	"github.com/walletlens/walletlens/internal/graph"
	"github.com/walletlens/walletlens/internal/synthetic"
)

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// expand builds the counterparty graph for one address from chain data.
// GET /api/expand?address=0x...&chainId=1
func (s *Server) expand(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	chainID := uint64(1)
	if raw := c.Query("chainId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chainId: " + raw})
			return
		}
		chainID = parsed
	}

	payload, err := s.builder.BuildExpansionGraph(c.Request.Context(), address, chainID)
	if err != nil {
		s.renderBuildError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// syntheticGraph serves the simulated transaction graph.
// GET /api/graph?range=7d|30d|90d|all
func (s *Server) syntheticGraph(c *gin.Context) {
	r := synthetic.RangeFromPreset(c.DefaultQuery("range", "all"), time.Now())

	if from := c.Query("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date: " + from})
			return
		}
		r.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date: " + to})
			return
		}
		r.To = t
	}

	c.JSON(http.StatusOK, s.builder.BuildSyntheticGraph(r))
}

// memoryGraph serves the graph over records stored in the memory service.
func (s *Server) memoryGraph(c *gin.Context) {
	c.JSON(http.StatusOK, s.builder.BuildMemoryGraph(c.Request.Context()))
}

func (s *Server) statsSnapshot(c *gin.Context) {
	c.JSON(http.StatusOK, s.stats.Snapshot())
}

// ---------------------------------------------------------------------- //
// Session endpoints: server-side accumulation of repeated expansions

func (s *Server) createSession(c *gin.Context) {
	id := uuid.NewString()
	s.mu.Lock()
	s.sessions[id] = graph.NewMerger()
	s.mu.Unlock()
	c.JSON(http.StatusCreated, gin.H{"sessionId": id})
}

func (s *Server) session(id string) (*graph.Merger, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.sessions[id]
	return m, ok
}

func (s *Server) sessionGraph(c *gin.Context) {
	m, ok := s.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}
	c.JSON(http.StatusOK, m.Graph())
}

// sessionExpand runs one expansion and folds it into the session graph, so
// clicking through counterparties grows a single merged view.
func (s *Server) sessionExpand(c *gin.Context) {
	m, ok := s.session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown session"})
		return
	}

	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}
	chainID := uint64(1)
	if raw := c.Query("chainId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid chainId: " + raw})
			return
		}
		chainID = parsed
	}

	payload, err := s.builder.BuildExpansionGraph(c.Request.Context(), address, chainID)
	if err != nil {
		s.renderBuildError(c, err)
		return
	}
	m.Add(payload)
	c.JSON(http.StatusOK, m.Graph())
}

func (s *Server) renderBuildError(c *gin.Context, err error) {
	if errors.Is(err, addr.ErrInvalid) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg("graph build failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
