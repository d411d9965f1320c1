package identity

// usernames are built from a fixed curated pun list plus a short random
// suffix, e.g. "RoyalFlush-x7fq". The suffix keeps collisions unlikely
// without any central registry.
var punNames = []string{
	"SirPoopsALot", "DooDooDuke", "StoolSurfer", "BathroomBandit", "CaptainCrapper",
	"TheLooTenant", "PorcelainPrince", "RoyalFlush", "CodeBrownCommando", "LogLady",
	"FlushGordon", "PooNinja", "ThroneMaster", "DigestiveDynamo", "SepticSage",
	"BowlCommander", "LoomeisterGeneral", "TheExcrementExpert", "WasteWizard",
}

const suffixAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

const suffixLength = 4
