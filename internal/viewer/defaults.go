package viewer

import "git.home.luguber.info/inful/texwatch/internal/config"

// DefaultCandidates returns the built-in viewer priority list for a platform.
// The ordering is an informal popularity/startup-speed preference; callers
// needing different priorities supply their own list via configuration.
func DefaultCandidates(goos string) []config.ViewerCandidate {
	switch goos {
	case "windows":
		return []config.ViewerCandidate{
			{Name: "SumatraPDF (64-bit)", Path: `C:\Program Files\SumatraPDF\SumatraPDF.exe`},
			{Name: "SumatraPDF (32-bit)", Path: `C:\Program Files (x86)\SumatraPDF\SumatraPDF.exe`},
			{Name: "Adobe Acrobat", Path: `C:\Program Files\Adobe\Acrobat DC\Acrobat\Acrobat.exe`},
			{Name: "Adobe Acrobat Reader", Path: `C:\Program Files (x86)\Adobe\Acrobat Reader DC\Reader\AcroRd32.exe`},
		}
	case "darwin":
		return []config.ViewerCandidate{
			{Name: "Skim", Path: "/Applications/Skim.app"},
			{Name: "Preview", Path: "/System/Applications/Preview.app"},
		}
	default:
		return []config.ViewerCandidate{
			{Name: "zathura", Path: "/usr/bin/zathura"},
			{Name: "Evince", Path: "/usr/bin/evince"},
			{Name: "Okular", Path: "/usr/bin/okular"},
			{Name: "xdg-open", Path: "/usr/bin/xdg-open"},
		}
	}
}

// InstallHint returns the recommendation shown when no viewer resolves.
func InstallHint(goos string) string {
	switch goos {
	case "windows":
		return "Install SumatraPDF (https://www.sumatrapdfreader.org/) - it reloads the PDF automatically after each rebuild."
	case "darwin":
		return "Install Skim (https://skim-app.sourceforge.io/) - it reloads the PDF automatically after each rebuild."
	default:
		return "Install zathura or evince - both reload the PDF automatically after each rebuild."
	}
}
