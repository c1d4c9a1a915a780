package echoapi

import (
	"bytes"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/bunk/core"
	"github.com/trezcool/bunk/core/attendance"
)

type recordApi struct {
	svc            *attendance.Service
	validate       *validator.Validate
	exportFilename string
}

// newRecordRequest tells a missing count apart from a zero one.
type newRecordRequest struct {
	StudentName     string `json:"studentName"`
	TotalClasses    *int   `json:"totalClasses" validate:"required"`
	AttendedClasses *int   `json:"attendedClasses" validate:"required"`
}

func (r newRecordRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(r)
}

func (r newRecordRequest) NewRecord() attendance.NewRecord {
	return attendance.NewRecord{
		StudentName:     r.StudentName,
		TotalClasses:    *r.TotalClasses,
		AttendedClasses: *r.AttendedClasses,
	}
}

func registerRecordAPI(g *echo.Group, svc *attendance.Service, validate *validator.Validate, exportFilename string) {
	if exportFilename == "" {
		exportFilename = "attendance_history.csv"
	}
	api := recordApi{
		svc:            svc,
		validate:       validate,
		exportFilename: exportFilename,
	}

	g.GET("/calculate", api.calculate)

	rg := g.Group("/records")
	rg.POST("", api.create)
	rg.GET("", api.query)
	rg.DELETE("", api.clear)
	rg.GET("/export", api.export)
}

// Handlers

func (api *recordApi) calculate(ctx echo.Context) error {
	total, err := intQueryParam(ctx, "totalClasses")
	if err != nil {
		return err
	}
	attended, err := intQueryParam(ctx, "attendedClasses")
	if err != nil {
		return err
	}

	res, err := attendance.Calculate(total, attended)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, res)
}

func (api *recordApi) create(ctx echo.Context) error {
	var data newRecordRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to newRecordRequest")
	}
	if err := data.Validate(api.validate); err != nil {
		return errors.Wrap(err, "validating newRecordRequest")
	}

	rec, err := api.svc.Create(ctx.Request().Context(), data.NewRecord())
	if err != nil {
		return errors.Wrap(err, "creating record")
	}
	return ctx.JSON(http.StatusCreated, rec)
}

func (api *recordApi) query(ctx echo.Context) error {
	filter := api.bindFilter(ctx)
	return ctx.JSON(http.StatusOK, api.svc.Query(ctx.Request().Context(), filter))
}

func (api *recordApi) export(ctx echo.Context) error {
	filter := api.bindFilter(ctx)

	var buf bytes.Buffer
	if err := api.svc.Export(ctx.Request().Context(), &buf, filter); err != nil {
		return errors.Wrap(err, "exporting records")
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": api.exportFilename})
	ctx.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	return ctx.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (api *recordApi) clear(ctx echo.Context) error {
	confirm, _ := strconv.ParseBool(ctx.QueryParam("confirm"))
	if err := api.svc.Clear(ctx.Request().Context(), confirm); err != nil {
		return errors.Wrap(err, "clearing records")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *recordApi) bindFilter(ctx echo.Context) attendance.QueryFilter {
	filter := attendance.QueryFilter{Search: ctx.QueryParam("search")}
	ordering := new(Ordering)
	ordering.Bind(ctx)
	filter.Orderings = ordering.Orderings
	return filter
}

func intQueryParam(ctx echo.Context, name string) (int, error) {
	val := ctx.QueryParam(name)
	if val == "" {
		return 0, core.NewValidationError(nil, core.FieldError{Field: name, Error: "this field is required"})
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, core.NewValidationError(nil, core.FieldError{Field: name, Error: "must be an integer"})
	}
	return n, nil
}
