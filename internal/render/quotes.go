package render

import "statusio-go/internal/status"

// Editorial one-liners appended to cards when quotes are enabled. One pool
// per urgency tier; the pools are disjoint and fixed.

var quotesOK = []string{
	"Grind & binge time!", "Work n' watch time!", "Emails? Nah, more episodes.",
	"Multitask: cry + work.", "Boss on mute, show on blast!",
	"Plot twist: me!", "Popcorn is needed!", "Sequel my life...",
	"Cue the chaos!", "Credits? Nope. Next.", "Spoiler: Need snacks.",
	"You earned this binge, champ", "Queue = life. Season 1 GO",
	"Meetings done, MOVIE ON", "Procrastination level: PRO",
	"Tonight: couch + 47 episodes", "Couch just filed for PTO",
	"Main quest: DO NOT DISTURB", "Side quest: find the remote",
	"One more ep… *famous last words*", "I NEED to know what happens!",
	"Sleep? What’s that?", "Cliffhanger holding me hostage",
	"I can stop… after this season", "Self-care = 3AM binge",
	"Oops, autoplay betrayed me", "Credits? We don’t do that here",
	"Skipping intros = cardio", "Laundry? Drama waits for NO ONE",
	"Binge now, regret at sunrise", "Spoilers = war crime",
	"3AM me: still watching", "Blink = miss the plot",
	"Chores? What chores?", "Remote stuck to my hand",
	"Next ep = my religion", "Autoplay = evil genius",
	"Blanket burrito mode", "Pause? Never heard",
	"WiFi > oxygen", "Episode 1? Rookie numbers",
	"Netflix & actually chill", "Couch dent = legacy",
	"Horror: heart attack free", "Sci-fi: beam me up, couch",
	"Drama: tears > tissues", "Action: boom in my room",
	"Fantasy: dragons > deadlines", "True crime: guilty pleasure",
	"Anime: subs > dubs fight", "Mystery: who done it? Me",
	"What day is it again?", "Sunlight? What's that?",
	"Binge hangover hits", "Buffering… my life",
	"WiFi ghosted me", "Error 404: fun not found",
	"Remote battery dead", "You're the Debrid Master",
}

var quotesWarning = []string{
	"Renew before cliffhanger.", "Cheaper than snacks.",
	"Tiny fee, huge chill.", "Beat the ‘oops, expired’.",
	"Your future self says thanks.", "Renew now, binge later.",
	"Don’t pause the fun.", "Click. Renew. Continue.",
	"Keep calm, renew on.", "Roll credits on worry.",
	"Pay up or plot twist: pain", "Binge tax due, peasant",
	"Wallet lighter, soul fuller", "Renew or face the void",
	"Card declined? Big sad", "Couch demands tribute",
	"Subscription > therapy", "Click or cry at 99%",
	"Renewal = plot armor", "Don’t let the algorithm win",
	"Cheaper than Starbucks coffee",
}

var quotesCritical = []string{
	"Boss fight: renewal.", "Renew soon, it's coming!",
	"Please renew soon...", "Your time is almost up!",
	"Don't let your ISP catch on", "Two taps, all vibes.",
	"Renew = peace unlocked.", "Don’t lose the finale.",
	"Almost out—top up.", "3…2…renew.", "Tiny bill, big joy.",
	"Grab the lifeline.", "Save the weekend.",
	"Clock’s loud. Renew.", "Last ep loading… or not",
	"Buffering fate. Renew.", "Do it or doomscroll life",
	"Finale blocked. Pay up.", "Renew or rage quit",
	"Plot armor expiring",
}

var quotesExpired = []string{
	"Renew ASAP or else...", "Your ISP will be mad!",
	"Renew now to avoid ISP Warnings", "Renew subscription to continue",
	"Renew to avoid confrontation", "Renew now to continue",
	"We're not responsible, renew.", "We pause respectfully.",
	"Refill the fun meter.", "Next ep awaits payment.",
	"Fix the sub, then binge.", "Snack break until renew.",
	"Epic… after renewal.", "Re-subscribe to continue.",
	"Broke hours activated", "Screen black, dreams too",
	"Renew or rot in reality", "Buffering… forever",
	"Cliffhanger hell awaits", "Wallet betrayed you",
	"Free trial? Cute story", "Back to real life, sucka",
	"Paywall won. You lost.", "Subscription graveyard",
	"Restart life.exe failed", "Touch grass (mandatory)",
	"You had one job: renew",
}

// poolFor returns the phrase pool matching an urgency tier.
func poolFor(t status.Tier) []string {
	switch t {
	case status.TierExpired:
		return quotesExpired
	case status.TierCritical:
		return quotesCritical
	case status.TierWarning:
		return quotesWarning
	default:
		return quotesOK
	}
}
