package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/toyz/springhttp/internal/models"
)

func TestJoinPath(t *testing.T) {
	tests := []struct {
		name       string
		basePath   string
		methodPath string
		want       string
	}{
		{"base and sub path", "users", "/{id}", "/users/{id}"},
		{"slashes everywhere", "/users/", "/{id}/", "/users/{id}"},
		{"both empty", "", "", "/"},
		{"empty base", "", "/health", "/health"},
		{"empty method path", "/orders", "", "/orders/"},
		{"nested base", "/api/v1/", "items", "/api/v1/items"},
		{"inner triple slash is not fully collapsed", "a///b", "", "/a//b/"},
		{"inner double slash collapsed", "a//b", "c", "/a/b/c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JoinPath(tt.basePath, tt.methodPath))
		})
	}
}

func TestHTTPRenderer_Render(t *testing.T) {
	renderer := NewHTTPRenderer("http://localhost:8080", nil)

	t.Run("order controller", func(t *testing.T) {
		info := &models.ControllerInfo{
			ClassName: "OrderController",
			BasePath:  "/orders",
			FilePath:  "src/OrderController.java",
			Methods: []models.RouteInfo{
				{Name: "getOrder", Method: models.MethodGet, Path: "/{id}"},
			},
		}

		expected := "### OrderController\n" +
			"# File: src/OrderController.java\n" +
			"\n" +
			"# getOrder\n" +
			"GET http://localhost:8080/orders/{id}\n" +
			"Authorization: Bearer {{token}}\n" +
			"\n" +
			"###\n"

		assert.Equal(t, expected, renderer.Render(info))
	})

	t.Run("route with body", func(t *testing.T) {
		info := &models.ControllerInfo{
			ClassName: "UserController",
			BasePath:  "users",
			FilePath:  "UserController.java",
			Methods: []models.RouteInfo{
				{Name: "create", Method: models.MethodPost, HasBody: true},
				{Name: "remove", Method: models.MethodDelete, Path: "{id}"},
			},
		}

		expected := "### UserController\n" +
			"# File: UserController.java\n" +
			"\n" +
			"# create\n" +
			"POST http://localhost:8080/users/\n" +
			"Authorization: Bearer {{token}}\n" +
			"Content-Type: application/json\n" +
			"\n" +
			"{}\n" +
			"\n" +
			"###\n" +
			"\n" +
			"# remove\n" +
			"DELETE http://localhost:8080/users/{id}\n" +
			"Authorization: Bearer {{token}}\n" +
			"\n" +
			"###\n"

		assert.Equal(t, expected, renderer.Render(info))
	})

	t.Run("no routes renders header only", func(t *testing.T) {
		info := &models.ControllerInfo{ClassName: "Empty", FilePath: "Empty.java"}
		assert.Equal(t, "### Empty\n# File: Empty.java\n", renderer.Render(info))
	})

	t.Run("empty paths keep the leading slash", func(t *testing.T) {
		info := &models.ControllerInfo{
			ClassName: "Root",
			FilePath:  "Root.java",
			Methods:   []models.RouteInfo{{Name: "unknown", Method: models.MethodPatch}},
		}
		assert.Contains(t, renderer.Render(info), "\nPATCH http://localhost:8080/\n")
	})

	t.Run("base url is used verbatim", func(t *testing.T) {
		r := NewHTTPRenderer("https://api.example.com/", nil)
		info := &models.ControllerInfo{
			ClassName: "X",
			FilePath:  "X.java",
			Methods:   []models.RouteInfo{{Name: "x", Method: models.MethodGet, Path: "/x"}},
		}
		assert.Contains(t, r.Render(info), "\nGET https://api.example.com//x\n")
	})
}

type fixedBodies string

func (f fixedBodies) Body(models.RouteInfo) string { return string(f) }

func TestHTTPRenderer_BodyProvider(t *testing.T) {
	renderer := NewHTTPRenderer("http://h", fixedBodies("{\n  \"name\": \"\"\n}"))

	info := &models.ControllerInfo{
		ClassName: "C",
		FilePath:  "C.java",
		Methods: []models.RouteInfo{
			{Name: "a", Method: models.MethodPut, Path: "/a", HasBody: true, BodyType: "Dto"},
			{Name: "b", Method: models.MethodGet, Path: "/b"},
		},
	}

	out := renderer.Render(info)
	assert.Contains(t, out, "Content-Type: application/json\n\n{\n  \"name\": \"\"\n}\n\n###\n")
	assert.Contains(t, out, "# b\nGET http://h/b\nAuthorization: Bearer {{token}}\n\n###\n")
}

func TestFormatPathVariables(t *testing.T) {
	assert.Equal(t, "/users/{{id}}", FormatPathVariables("/users/{id}"))
	assert.Equal(t, "/users/{{userId}}/posts/{{postId}}", FormatPathVariables("/users/{userId}/posts/{postId}"))
	assert.Equal(t, "/users/list", FormatPathVariables("/users/list"))
	assert.Equal(t, "/files/{{name:.+}}", FormatPathVariables("/files/{name:.+}"))
}

func TestQueryString(t *testing.T) {
	assert.Equal(t, "?page=value&size=value", QueryString([]models.QueryParam{
		{Name: "page", Required: true},
		{Name: "size", Required: true},
	}))
	assert.Equal(t, "?query=", QueryString([]models.QueryParam{{Name: "query"}}))
	assert.Equal(t, "", QueryString(nil))
}

func TestHTTPRenderer_Options(t *testing.T) {
	info := &models.ControllerInfo{
		ClassName: "UserController",
		BasePath:  "/users",
		FilePath:  "UserController.java",
		Methods: []models.RouteInfo{
			{
				Name:         "get",
				Method:       models.MethodGet,
				Path:         "/{id}",
				QueryParams:  []models.QueryParam{{Name: "expand", Required: true}, {Name: "fields"}},
				RequiresAuth: true,
			},
			{Name: "health", Method: models.MethodGet, Path: "/health"},
		},
	}

	t.Run("defaults keep braces and always authorize", func(t *testing.T) {
		out := NewHTTPRenderer("http://{host}", nil).Render(info)
		assert.Contains(t, out, "# get\nGET http://{host}/users/{id}?expand=value&fields=\nAuthorization: Bearer {{token}}\n")
		assert.Contains(t, out, "# health\nGET http://{host}/users/health\nAuthorization: Bearer {{token}}\n")
	})

	t.Run("path variables leave the base URL alone", func(t *testing.T) {
		out := NewHTTPRenderer("http://{host}", nil, WithPathVariables()).Render(info)
		assert.Contains(t, out, "\nGET http://{host}/users/{{id}}?expand=value&fields=\n")
	})

	t.Run("auth detection", func(t *testing.T) {
		out := NewHTTPRenderer("http://h", nil, WithAuthDetection()).Render(info)
		assert.Contains(t, out, "# get\nGET http://h/users/{id}?expand=value&fields=\nAuthorization: Bearer {{token}}\n\n###\n")
		assert.Contains(t, out, "# health\nGET http://h/users/health\n\n###\n")
	})
}
