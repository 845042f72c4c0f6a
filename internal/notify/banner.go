package notify

import "fmt"

// Banner colors match the bootstrap success/danger palette.
const (
	bannerSuccessColor = "#28a745"
	bannerFailureColor = "#dc3545"
)

// BannerHTML renders the in-page status banner: a colored div with an icon
// and the status message.
func BannerHTML(message string, success bool) string {
	color, icon := bannerSuccessColor, "✅"
	if !success {
		color, icon = bannerFailureColor, "❌"
	}

	return fmt.Sprintf(`
        <div style="
            background-color: %s;
            color: white;
            padding: 8px 12px;
            border-radius: 4px;
            margin-top: 5px;
            font-family: sans-serif;
            font-weight: bold;
        ">
            %s %s
        </div>
        `, color, icon, message)
}
