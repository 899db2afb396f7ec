package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"patientsapi/internal/model"
	"patientsapi/internal/service"
)

// PatientResponse is the listing envelope. Single-record lookups use the
// same shape with a one-item list.
type PatientResponse struct {
	Patients []model.Patient `json:"patients"`
}

// PagedResponse carries one page of records plus pagination metadata.
type PagedResponse struct {
	Metadata PageMetadata    `json:"metadata"`
	Patients []model.Patient `json:"patients"`
}

// PageMetadata mirrors the computed page fields on the wire.
type PageMetadata struct {
	PageNumber      int  `json:"pageNumber"`
	PageSize        int  `json:"pageSize"`
	TotalPages      int  `json:"totalPages"`
	TotalCount      int  `json:"totalCount"`
	HasPreviousPage bool `json:"hasPreviousPage"`
	HasNextPage     bool `json:"hasNextPage"`
}

// ListPatients returns a handler for GET /api/v1/patients.
func ListPatients(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		patients, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(PatientResponse{Patients: patients})
	}
}

// GetPatient returns a handler for GET /api/v1/patients/:id.
func GetPatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "patient not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(PatientResponse{Patients: []model.Patient{*p}})
	}
}

// GetPagedPatients returns a handler for GET /api/v1/patients/paged.
// Both pageNumber and pageSize are required positive query parameters;
// a missing or malformed one fails before the store is touched. No
// defaults are substituted at this endpoint.
func GetPagedPatients(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		pageNumber, code, msg := requirePositiveQuery(c, "pageNumber")
		if code != "" {
			return writeError(c, fiber.StatusBadRequest, code, msg)
		}
		pageSize, code, msg := requirePositiveQuery(c, "pageSize")
		if code != "" {
			return writeError(c, fiber.StatusBadRequest, code, msg)
		}

		res, err := svc.GetPage(c.UserContext(), pageNumber, pageSize)
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(PagedResponse{
			Metadata: PageMetadata{
				PageNumber:      res.PageNumber,
				PageSize:        res.PageSize,
				TotalPages:      res.TotalPages,
				TotalCount:      res.TotalCount,
				HasPreviousPage: res.HasPreviousPage,
				HasNextPage:     res.HasNextPage,
			},
			Patients: res.Patients,
		})
	}
}

// requirePositiveQuery parses a required positive integer query parameter,
// returning an error code and message when the value is absent or unusable.
func requirePositiveQuery(c *fiber.Ctx, name string) (int, string, string) {
	raw := c.Query(name)
	if raw == "" {
		return 0, "MISSING_" + queryCode(name), name + " is required"
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return 0, "INVALID_" + queryCode(name), name + " must be a positive integer"
	}
	return v, "", ""
}

func queryCode(name string) string {
	switch name {
	case "pageNumber":
		return "PAGE_NUMBER"
	case "pageSize":
		return "PAGE_SIZE"
	default:
		return "PARAM"
	}
}

// CreatePatient returns a handler for POST /api/v1/patients.
func CreatePatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.PatientInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid input JSON")
		}

		p, err := svc.Create(c.UserContext(), &in)
		if err != nil {
			if errors.Is(err, service.ErrInvalidPatient) {
				return writeError(c, fiber.StatusBadRequest, "INVALID_PATIENT", "invalid input JSON")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}

		c.Location("/api/v1/patients/" + p.ID)
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// UpdatePatient returns a handler for PUT /api/v1/patients/:id. The full
// payload replaces every mutable field of the stored record; the path id
// is authoritative and any id in the body is ignored.
func UpdatePatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		if _, err := uuid.Parse(id); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var in model.PatientInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid input JSON")
		}

		p, err := svc.Update(c.UserContext(), id, &in)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrInvalidPatient):
				return writeError(c, fiber.StatusBadRequest, "INVALID_PATIENT", "invalid input JSON")
			case errors.Is(err, service.ErrNotFound):
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "patient not found")
			default:
				return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
			}
		}
		return c.JSON(p)
	}
}
