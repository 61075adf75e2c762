package rbac

// Simple default policy. Expand as needed.
var RolePermissions = map[string][]string{
	"student": {
		"catalog:view",
		"assessment:start",
		"assessment:answer",
		"assessment:view-own",
		"analysis:run",
		"feedback:view-own",
		"capability:view-own",
	},
	"faculty": {
		"catalog:view",
		"catalog:write",
		"assessment:view-all",
		"feedback:view-all",
		"capability:view-all",
	},
	"admin": {
		"*", // everything
	},
}
