package v1

// BasePath is the route prefix of version 1 of the dialog memory service API.
const BasePath = "/api/v1/dms"
