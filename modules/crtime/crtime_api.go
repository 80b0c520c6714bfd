package crtime

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2"
	"github.com/hypernetix/crtime/libs/api"
	"github.com/hypernetix/crtime/libs/core"
	"github.com/hypernetix/crtime/libs/errorx"
	"github.com/hypernetix/crtime/modules/fstype"
)

type GetCrtimeInput struct {
	Path   string `query:"path" required:"true" doc:"File or directory path on the server host" example:"/mnt/windows/Users/me/report.docx"`
	Format string `query:"format" doc:"Display format: locale, iso, or a Go time layout" example:"iso"`
}

type CrtimeAPIResponseBody struct {
	Path             string `json:"path"`
	Filesystem       string `json:"filesystem" doc:"Classified filesystem type of the backing mount"`
	Supported        bool   `json:"supported" doc:"Whether a creation-time strategy exists for the filesystem"`
	CreationTimeUnix int64  `json:"creation_time_unix,omitempty" doc:"Creation instant as Unix seconds"`
	Formatted        string `json:"formatted,omitempty" doc:"Creation instant rendered per the format preference"`
}

type CrtimeAPIResponse struct {
	Body CrtimeAPIResponseBody `json:"body"`
}

// validateRequestPath rejects requests before the mount-table query runs:
// the server resolves paths against its own filesystem, so only absolute
// paths to existing files are meaningful
func validateRequestPath(path string) errorx.Error {
	if path == "" {
		return errorx.NewErrBadRequest("path must not be empty")
	}
	if !filepath.IsAbs(path) {
		return errorx.NewErrBadRequest("path must be absolute, got %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errorx.NewErrNotFound("path does not exist: %s", path)
		}
		return errorx.NewErrMetadataRead("failed to stat %s: %v", path, err)
	}
	return nil
}

func initCrtimeAPIRoutes(humaApi huma.API) {
	// GET /crtime - Get the creation time of a file on the server host
	api.RegisterEndpoint(humaApi, huma.Operation{
		OperationID: "get-crtime",
		Method:      http.MethodGet,
		Path:        "/crtime",
		Summary:     "Get file creation time",
		Tags:        []string{"Creation Time"},
	}, func(ctx context.Context, input *GetCrtimeInput) (*CrtimeAPIResponse, error) {
		if errx := validateRequestPath(input.Path); errx != nil {
			return nil, errx.HumaError()
		}

		fs, errx := fstype.Classify(input.Path)
		if errx != nil {
			return nil, errx.HumaError()
		}

		res, errx := Extract(input.Path, fs)
		if errx != nil {
			return nil, errx.HumaError()
		}

		body := CrtimeAPIResponseBody{
			Path:       input.Path,
			Filesystem: fs.String(),
			Supported:  !res.Unsupported,
		}
		if !res.Unsupported {
			body.CreationTimeUnix = res.Time.Unix()
			body.Formatted = FormatInstant(res.Time, input.Format)
		}

		return &CrtimeAPIResponse{Body: body}, nil
	})
}

func initModule() error {
	logger.Debug("Default display format: %s", defaultFormat())
	return nil
}

func InitModule() {
	core.RegisterModule(&core.Module{
		Name:          "crtime",
		InitAPIRoutes: initCrtimeAPIRoutes,
		InitMain:      initModule,
	})

	logger.Info("Crtime module initialized")
}
