package locale

var catalogs = map[string]map[string]map[string]string{
	"de": {
		"client": {
			"clients":     "Kunden",
			"no_clients":  "Keine Kunden vorhanden.",
			"create_with": "Anlegen mit: docgen client add --name \"Kundenname\"",
			"created":     "Kunde {} angelegt",
			"deleted":     "Kunde gelöscht",
		},
		"project": {
			"projects":    "Projekte",
			"for_client":  "Projekte für",
			"no_projects": "Keine Projekte vorhanden.",
			"created":     "Projekt {} angelegt",
			"deleted":     "Projekt gelöscht",
		},
		"document": {
			"documents":    "Dokumente",
			"no_documents": "Keine Dokumente vorhanden.",
			"created":      "Dokument {} angelegt",
			"deleted":      "Dokument gelöscht",
		},
		"counter": {
			"counters": "Zähler",
		},
		"init": {
			"done": "Datenverzeichnis {} initialisiert",
		},
	},
	"en": {
		"client": {
			"clients":     "Clients",
			"no_clients":  "No clients yet.",
			"create_with": "Create one with: docgen client add --name \"Client Name\"",
			"created":     "Created client {}",
			"deleted":     "Client deleted",
		},
		"project": {
			"projects":    "Projects",
			"for_client":  "Projects for",
			"no_projects": "No projects yet.",
			"created":     "Created project {}",
			"deleted":     "Project deleted",
		},
		"document": {
			"documents":    "Documents",
			"no_documents": "No documents yet.",
			"created":      "Created document {}",
			"deleted":      "Document deleted",
		},
		"counter": {
			"counters": "Counters",
		},
		"init": {
			"done": "Initialized data directory {}",
		},
	},
}
