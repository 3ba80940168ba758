package api

import (
	"net/http"

	"github.com/banachtech/dupire-aad/mc"
	"github.com/banachtech/dupire-aad/rng"
	"github.com/gin-gonic/gin"
)

// surfaceRequest is the wire shape both /v1/price and /v1/risk accept:
// a flattened (row-major, spots outer) vol surface plus product terms
// and engine controls.
type surfaceRequest struct {
	S0       float64   `json:"s0" binding:"required"`
	Spots    []float64 `json:"spots" binding:"required"`
	Times    []float64 `json:"times" binding:"required"`
	Vols     []float64 `json:"vols" binding:"required"`
	Maturity float64   `json:"maturity" binding:"required"`
	Strike   float64   `json:"strike" binding:"required"`
	Barrier  float64   `json:"barrier" binding:"required"`
	Epsilon  float64   `json:"epsilon"`
	Np       int       `json:"paths"`
	Nb       int       `json:"batch_size"`
	Nt       int       `json:"steps"`
	Parallel bool      `json:"parallel"`
}

func (req *surfaceRequest) toParams() (*mc.Params, error) {
	surface, err := mc.NewVolSurface(req.Spots, req.Times, req.Vols)
	if err != nil {
		return nil, err
	}

	epsilon := req.Epsilon
	if epsilon <= 0 {
		epsilon = 0.01 * req.S0
	}
	np, nb, nt := req.Np, req.Nb, req.Nt
	if np <= 0 {
		np = 100000
	}
	if nb <= 0 {
		nb = 1024
	}
	if nt <= 0 {
		nt = 48
	}

	return &mc.Params{
		S0:       req.S0,
		Surface:  surface,
		Maturity: req.Maturity,
		Strike:   req.Strike,
		Barrier:  req.Barrier,
		Epsilon:  epsilon,
		Np:       np,
		Nb:       nb,
		Nt:       nt,
		Parallel: req.Parallel,
		RNG:      rng.NewPseudo(1),
	}, nil
}

func (server *Server) price(c *gin.Context) {
	var req surfaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	params, err := req.toParams()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	price, err := mc.Price(params)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"price": price})
}

func (server *Server) risk(c *gin.Context) {
	var req surfaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	params, err := req.toParams()
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	result, err := mc.Risk(params)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse(err))
		return
	}

	ns, nt := result.Vegas.Dims()
	vegas := make([][]float64, ns)
	for i := 0; i < ns; i++ {
		vegas[i] = make([]float64, nt)
		for j := 0; j < nt; j++ {
			vegas[i][j] = result.Vegas.At(i, j)
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"price": result.Price,
		"delta": result.Delta,
		"vegas": vegas,
	})
}
