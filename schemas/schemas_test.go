package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StaffAnchor/StaffAnchor-ATS-V1-sub001/internal/schemas"
)

var schemaFiles = []string{
	"candidate.schema.json",
	"job.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_ValidJSONSchema(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			assert.Contains(t, schemaObj, "$schema")
			assert.Contains(t, schemaObj, "type")
			assert.Contains(t, schemaObj, "items")
		})
	}
}

func TestCandidateSchema_AcceptsSeedDocument(t *testing.T) {
	schema, err := os.ReadFile("candidate.schema.json")
	require.NoError(t, err)

	doc := `[{
		"name": "Asha Rao",
		"email": "asha@example.com",
		"skills": ["AutoCAD", "SketchUp"],
		"experience": [{"position": "Architect", "start": "2018", "end": "2022"}],
		"preferredLocations": [{"city": "Bangalore", "state": "Karnataka", "country": "India"}]
	}]`
	assert.NoError(t, schemas.ValidateJSONString(string(schema), doc))
}

func TestCandidateSchema_RejectsUnknownField(t *testing.T) {
	schema, err := os.ReadFile("candidate.schema.json")
	require.NoError(t, err)

	doc := `[{"name": "A", "email": "a@b.com", "salary": 100}]`
	assert.Error(t, schemas.ValidateJSONString(string(schema), doc))
}

func TestJobSchema_AcceptsSeedDocument(t *testing.T) {
	schema, err := os.ReadFile("job.schema.json")
	require.NoError(t, err)

	doc := `[{
		"title": "Senior Architect",
		"description": "Design work with autocad",
		"skills": ["autocad"],
		"experience": 4,
		"location": "Bangalore, Karnataka, India"
	}]`
	assert.NoError(t, schemas.ValidateJSONString(string(schema), doc))
}

func TestJobSchema_RejectsNegativeExperience(t *testing.T) {
	schema, err := os.ReadFile("job.schema.json")
	require.NoError(t, err)

	doc := `[{"title": "Architect", "experience": -1}]`
	assert.Error(t, schemas.ValidateJSONString(string(schema), doc))
}
