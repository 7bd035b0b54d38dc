// Package consts contains constants for the ipc domain
package consts

import "github.com/archita9/IPC-News-Bot/internal/domain/ipc/entities"

// Sections lists every recognized IPC section in ascending numeric order
var Sections = []entities.Section{
	{Code: "38", Title: "Several persons engaged in a criminal act", Phrase: "criminal conspiracy OR common intention India"},
	{Code: "320", Title: "Grievous hurt", Phrase: "grievous injury OR serious assault India"},
	{Code: "321", Title: "Voluntarily causing hurt", Phrase: "hurt OR physical assault India"},
	{Code: "323", Title: "Punishment for voluntarily causing hurt", Phrase: "assault OR beaten India"},
	{Code: "324", Title: "Hurt by dangerous weapons or means", Phrase: "attack with weapon OR knife attack India"},
	{Code: "325", Title: "Punishment for grievous hurt", Phrase: "severe injury OR brutal assault India"},
	{Code: "326", Title: "Grievous hurt by dangerous weapons or means", Phrase: "acid attack OR chemical burn India"},
	{Code: "327", Title: "Hurt to extort property", Phrase: "extortion with injury India"},
}
