package servers

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.5.1 --config=../../../api/oapi-codegen.yml ../../../api/openapi.yml
