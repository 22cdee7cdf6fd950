package api

import (
	"fmt"

	"github.com/stewardhq/steward/internal/config"
	"github.com/stewardhq/steward/pkg/openapi"
)

// buildSpec assembles the OpenAPI document served at /openapi.json.
// Schemas stay intentionally shallow; the document exists for discovery
// and the Scalar UI, not for codegen.
func buildSpec(cfg *config.Config) ([]byte, error) {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	jsonBody := func(desc string) *openapi.RequestBody {
		return &openapi.RequestBody{
			Description: desc,
			Required:    true,
			Content: map[string]*openapi.MediaType{
				"application/json": {Schema: &openapi.Schema{Type: "object"}},
			},
		}
	}
	ok := func(desc string) map[int]*openapi.Response {
		return map[int]*openapi.Response{
			200: {
				Description: desc,
				Content: map[string]*openapi.MediaType{
					"application/json": {Schema: &openapi.Schema{Type: "object"}},
				},
			},
		}
	}

	spec.Paths["/chat"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Process a conversational turn",
			Description: "Routes free text to a business collection, extracts fields, and advances the session toward record execution.",
			Tags:        []string{"conversation"},
			RequestBody: jsonBody("Session id (optional), employee id (optional), and user input"),
			Responses:   ok("Turn result with reasoning and outcome"),
		},
	}

	spec.Paths["/collections"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:   "List collections",
			Tags:      []string{"collections"},
			Responses: ok("Collection summaries in catalog order"),
		},
	}
	spec.Paths["/collections/suggest"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Suggest collections for an input",
			Tags:    []string{"collections"},
			Parameters: []*openapi.Parameter{
				{Name: "input", In: "query", Required: true, Schema: &openapi.Schema{Type: "string"}},
				{Name: "limit", In: "query", Schema: &openapi.Schema{Type: "integer"}},
			},
			Responses: ok("Ranked collection suggestions"),
		},
	}
	spec.Paths["/collections/{name}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Find a collection",
			Tags:    []string{"collections"},
			Parameters: []*openapi.Parameter{
				{Name: "name", In: "path", Required: true, Schema: &openapi.Schema{Type: "string"}},
			},
			Responses: ok("Collection definition with field schema"),
		},
	}

	spec.Paths["/fields/process"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Extract and validate fields",
			Tags:        []string{"fields"},
			RequestBody: jsonBody("Collection name, free text input, and previously collected values"),
			Responses:   ok("Field processing result with validation state"),
		},
	}

	spec.Paths["/authz/authenticate"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Authenticate an employee",
			Tags:        []string{"authz"},
			RequestBody: jsonBody("Employee id"),
			Responses:   ok("Resolved access profile"),
		},
	}
	spec.Paths["/authz/check"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Check collection access",
			Tags:        []string{"authz"},
			RequestBody: jsonBody("Employee id, collection, and operation"),
			Responses:   ok("Authorization decision"),
		},
	}
	spec.Paths["/authz/{employeeId}/summary"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Summarize an employee's access",
			Tags:    []string{"authz"},
			Parameters: []*openapi.Parameter{
				{Name: "employeeId", In: "path", Required: true, Schema: &openapi.Schema{Type: "string"}},
			},
			Responses: ok("Access summary across all collections"),
		},
	}

	spec.Paths["/employees"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:   "List employees",
			Tags:      []string{"directory"},
			Responses: ok("Paged employee list"),
		},
		Post: &openapi.Operation{
			Summary:     "Create an employee",
			Tags:        []string{"directory"},
			RequestBody: jsonBody("Employee attributes"),
			Responses:   ok("Created employee"),
		},
	}
	spec.Paths["/employees/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Find an employee",
			Tags:    []string{"directory"},
			Parameters: []*openapi.Parameter{
				{Name: "id", In: "path", Required: true, Schema: &openapi.Schema{Type: "string", Format: "uuid"}},
			},
			Responses: ok("Employee"),
		},
		Put: &openapi.Operation{
			Summary:     "Update an employee",
			Tags:        []string{"directory"},
			RequestBody: jsonBody("Fields to update"),
			Responses:   ok("Updated employee"),
		},
		Delete: &openapi.Operation{
			Summary:   "Deactivate an employee",
			Tags:      []string{"directory"},
			Responses: map[int]*openapi.Response{204: {Description: "Deactivated"}},
		},
	}

	spec.Paths["/records"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:   "List records",
			Tags:      []string{"records"},
			Responses: ok("Paged record list"),
		},
		Post: &openapi.Operation{
			Summary:     "Create a record",
			Tags:        []string{"records"},
			RequestBody: jsonBody("Collection name and field values"),
			Responses:   ok("Created record"),
		},
	}
	spec.Paths["/records/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Find a record",
			Tags:    []string{"records"},
			Parameters: []*openapi.Parameter{
				{Name: "id", In: "path", Required: true, Schema: &openapi.Schema{Type: "string", Format: "uuid"}},
			},
			Responses: ok("Record"),
		},
		Put: &openapi.Operation{
			Summary:     "Update a record",
			Tags:        []string{"records"},
			RequestBody: jsonBody("Field values to merge"),
			Responses:   ok("Updated record"),
		},
		Delete: &openapi.Operation{
			Summary:   "Delete a record and its attachments",
			Tags:      []string{"records"},
			Responses: map[int]*openapi.Response{204: {Description: "Deleted"}},
		},
	}
	spec.Paths["/records/{id}/attachments"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:   "List record attachments",
			Tags:      []string{"records"},
			Responses: ok("Attachments"),
		},
		Post: &openapi.Operation{
			Summary:   "Upload an attachment",
			Tags:      []string{"records"},
			Responses: ok("Attachment metadata"),
		},
	}
	spec.Paths["/records/{id}/attachments/{attachmentId}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:   "Download an attachment",
			Tags:      []string{"records"},
			Responses: ok("Attachment content"),
		},
		Delete: &openapi.Operation{
			Summary:   "Delete an attachment",
			Tags:      []string{"records"},
			Responses: map[int]*openapi.Response{204: {Description: "Deleted"}},
		},
	}

	spec.Paths["/sessions/{id}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:   "Inspect a session",
			Tags:      []string{"sessions"},
			Responses: ok("Session snapshot"),
		},
		Delete: &openapi.Operation{
			Summary:   "End a session",
			Tags:      []string{"sessions"},
			Responses: map[int]*openapi.Response{204: {Description: "Ended"}},
		},
	}
	spec.Paths["/sessions/{id}/summary"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:   "Summarize a session",
			Tags:      []string{"sessions"},
			Responses: ok("Session summary"),
		},
	}
	spec.Paths["/sessions/{id}/events"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:   "List session events",
			Tags:      []string{"sessions"},
			Responses: ok("Persisted session events"),
		},
	}

	spec.Paths["/storage"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List stored blobs",
			Tags:    []string{"storage"},
			Parameters: []*openapi.Parameter{
				{Name: "prefix", In: "query", Schema: &openapi.Schema{Type: "string"}},
				{Name: "marker", In: "query", Schema: &openapi.Schema{Type: "string"}},
				{Name: "max_results", In: "query", Schema: &openapi.Schema{Type: "integer"}},
			},
			Responses: ok("Blob metadata page"),
		},
	}

	data, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, fmt.Errorf("marshal openapi spec: %w", err)
	}
	return data, nil
}
