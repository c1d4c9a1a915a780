package echoapi

import (
	"github.com/labstack/echo/v4"

	"github.com/trezcool/bunk/core"
)

var orderingParam = "ordering"

// Ordering binds "?ordering=field,-other" ("-" means descending).
type Ordering struct {
	Orderings []core.Ordering
}

func (ord *Ordering) Bind(ctx echo.Context) {
	if val := ctx.QueryParam(orderingParam); val != "" {
		ord.Orderings = core.ParseOrderings(val)
	}
}
