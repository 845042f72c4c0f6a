package notify

import (
	"encoding/json"
	"fmt"
)

// BrowserScript renders the desktop-notification script snippet. It plays a
// short 440 Hz tone, then shows (or requests permission for) a desktop
// notification. Browsers without Notification support log a console warning
// instead.
//
// Title and body are JSON-escaped before being spliced into the script.
func BrowserScript(title, body string) string {
	safeTitle := jsonEscape(title)
	safeBody := jsonEscape(body)

	return fmt.Sprintf(`
        (function() {
            try {
                var AudioContext = window.AudioContext || window.webkitAudioContext;
                if (AudioContext) {
                    var ctx = new AudioContext();
                    var osc = ctx.createOscillator();
                    var gain = ctx.createGain();

                    osc.type = 'sine';
                    osc.frequency.setValueAtTime(440, ctx.currentTime);

                    osc.connect(gain);
                    gain.connect(ctx.destination);

                    osc.start();
                    osc.stop(ctx.currentTime + 0.2);
                }
            } catch (e) {
                console.error("Watchdog Audio Error:", e);
            }

            if (!("Notification" in window)) {
                console.warn("This browser does not support desktop notification");
            } else if (Notification.permission === "granted") {
                new Notification(%s, { body: %s });
            } else if (Notification.permission !== "denied") {
                Notification.requestPermission().then(function (permission) {
                    if (permission === "granted") {
                        new Notification(%s, { body: %s });
                    }
                });
            }
        })();
        `, safeTitle, safeBody, safeTitle, safeBody)
}

// jsonEscape quotes s as a JSON string literal. Marshalling a plain string
// cannot fail, so the error is ignored.
func jsonEscape(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}
