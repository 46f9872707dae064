package characters

import (
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/dsl"
)

// Built-in pond names, in pond order.
const (
	SunnyShallows = "Sunny Shallows"
	MistyDepths   = "Misty Depths"
	CrystalCove   = "Crystal Cove"
)

// builtinDefs returns fresh definitions of the compiled-in cast.
func builtinDefs() map[domain.Builtin]*domain.FishDef {
	return map[domain.Builtin]*domain.FishDef{
		domain.Bubbles: {
			ID:      domain.Bubbles.String(),
			Name:    "Bubbles",
			Species: "Clownfish",
			Description: "A cheerful clownfish who loves puns and always\n" +
				"looks on the bright side. Energetic and warm.",
			Difficulty:   0.3,
			Color:        domain.Color{R: 1, G: 0.6, B: 0.1, A: 1},
			ArtHappy:     bubblesHappy,
			ArtNeutral:   bubblesArt,
			ArtSad:       bubblesShy,
			ArtSmall:     "  ><(((o>",
			DateLocation: "Coral Cafe",
			DateSceneArt: coralCafe,
			PondName:     SunnyShallows,
			Dialogues:    []*domain.Tree{bubblesDate()},
		},
		domain.Marina: {
			ID:      domain.Marina.String(),
			Name:    "Marina",
			Species: "Swordfish",
			Description: "An elegant swordfish with a sharp wit and a\n" +
				"competitive streak. Beneath the edge, she cares.",
			Difficulty:   0.6,
			Color:        domain.Color{R: 0.5, G: 0.7, B: 1, A: 1},
			ArtHappy:     marinaHappy,
			ArtNeutral:   marinaArt,
			ArtSad:       marinaAngry,
			ArtSmall:     " --====>",
			DateLocation: "Moonlit Reef",
			DateSceneArt: moonlitReef,
			PondName:     MistyDepths,
			Dialogues:    []*domain.Tree{marinaDate()},
		},
		domain.Gill: {
			ID:      domain.Gill.String(),
			Name:    "Gill",
			Species: "Pufferfish",
			Description: "A shy pufferfish who puffs up when nervous.\n" +
				"Quiet on the surface, but deeply thoughtful.",
			Difficulty: 0.45,
			Color:      domain.Color{R: 0.2, G: 1, B: 0.2, A: 1},
			// Gill relaxes as the relationship grows.
			ArtHappy:     gillArt,
			ArtNeutral:   gillShy,
			ArtSad:       gillPuffed,
			ArtSmall:     "  <o))><",
			DateLocation: "Sunken Ship",
			DateSceneArt: sunkenShip,
			PondName:     CrystalCove,
			Dialogues:    []*domain.Tree{gillDate()},
		},
	}
}

func bubblesDate() *domain.Tree {
	return dsl.New("start").
		Title("Date with Bubbles").
		Speaker("bubbles", "Bubbles").
		Speaker("player", "You").
		Text("start", "bubbles", "Hey hey hey! Thanks for bringing me to the Coral Cafe! I LOVE this place!", "q1").
		Choice("q1", "Bubbles is bouncing excitedly. What do you say?",
			dsl.Option("Your enthusiasm is contagious! What's good here?", "q1_good").Affection(3),
			dsl.Option("Calm down, it's just a cafe.", "q1_neutral"),
			dsl.Option("I mostly came for the free breadsticks.", "q1_funny").Affection(2),
		).
		Text("q1_good", "bubbles", "Oh em gee, EVERYTHING! But the kelp smoothie is to DIE for. Get it? Die? Like... fish don't actually die from kelp... okay that was dark.", "q2").
		Text("q1_neutral", "bubbles", "Oh... yeah, I guess you're right. *fidgets* I just get excited, you know?", "q2").
		Text("q1_funny", "bubbles", "HA! You're funny! I like funny. The breadsticks here are actually shaped like little seahorses!", "q2").
		Choice("q2", "Bubbles looks at you expectantly.",
			dsl.Option("Tell me about yourself, Bubbles.", "q2_deep").Affection(4),
			dsl.Option("So... do you have any hobbies?", "q2_hobby").Affection(2),
			dsl.Option("*stare at menu in silence*", "q2_silence"),
		).
		Text("q2_deep", "bubbles", "Aww, you want to know ME? Well, I'm a clownfish! I live in an anemone with my family. I love making others laugh because... honestly? The ocean can be scary sometimes. Laughter helps.", "q3").
		Text("q2_hobby", "bubbles", "I collect shiny things! Bottle caps, coins, once I found a whole spoon! I keep them in my anemone. My roommate hates it.", "q3").
		Text("q2_silence", "bubbles", "... ... ... Soooo this is awkward! I'll just keep talking then! Did you know clownfish can change gender? Nature is WILD!", "q3").
		Choice("q3", "The date is going well. Final moment...",
			dsl.Option("I had a really great time tonight, Bubbles.", "ending_good").Affection(5),
			dsl.Option("You're the funniest fish I've ever met.", "ending_great").Affection(4),
			dsl.Option("Well, this was... something.", "ending_meh").Affection(1),
		).
		Text("ending_good", "bubbles", "Me too! Can we do this again? I know this great place where the bioluminescent plankton glow at night!", "end").
		Text("ending_great", "bubbles", "*turns bright orange* Stop it, you're making me blush! ...Wait, I'm ALWAYS orange. BUT THE POINT STANDS!", "end").
		Text("ending_meh", "bubbles", "Oh... okay! Well, the offer stands if you ever want to hang out! No pressure! *nervous laugh*", "end").
		End("end").
		MustBuild()
}

func marinaDate() *domain.Tree {
	return dsl.New("start").
		Title("Date with Marina").
		Speaker("marina", "Marina").
		Speaker("player", "You").
		Text("start", "marina", "Hmph. The Moonlit Reef. Acceptable choice. I've seen better, but... the view isn't terrible tonight.", "q1").
		Choice("q1", "Marina gazes at the moonlit water with cool detachment.",
			dsl.Option("I picked it because the moonlight matches your silver scales.", "q1_flirt").Affection(4),
			dsl.Option("I hear you're the fastest fish in these waters.", "q1_compete").Affection(3),
			dsl.Option("What, too fancy for you?", "q1_snarky").Affection(1),
		).
		Text("q1_flirt", "marina", "*pauses* ...That was... smoother than I expected. Don't think flattery will make me go easy on you, though.", "q2").
		Text("q1_compete", "marina", "The fastest? Please. I'm the fastest in the ENTIRE eastern reef system. I clocked 60 knots last Tuesday. Care to race?", "q2").
		Text("q1_snarky", "marina", "Careful with that attitude. I have a sword on my face and I'm not afraid to use it. ...I'm kidding. Mostly.", "q2").
		Choice("q2", "Marina seems to be warming up slightly.",
			dsl.Option("What drives you to be the best at everything?", "q2_deep").Affection(4),
			dsl.Option("Want to have a race right now?", "q2_race").Affection(3),
			dsl.Option("You seem really intense.", "q2_blunt").Affection(1),
		).
		Text("q2_deep", "marina", "...Nobody asks me that. They just see the speed, the sword, the attitude. But... I push myself because stopping means being forgotten. And I refuse to be forgotten.", "q3").
		Text("q2_race", "marina", "Ha! Now you're speaking my language! Three laps around that coral formation. Loser buys dinner. Ready? ...Actually, let's finish our date first. Then I'll destroy you.", "q3").
		Text("q2_blunt", "marina", "Intense is how legends are made. But... maybe tonight I can dial it down. Just a notch. For you.", "q3").
		Choice("q3", "The moonlight glitters across the reef.",
			dsl.Option("You don't have to perform for me, Marina. I like who you really are.", "ending_good").Affection(5),
			dsl.Option("Next time, I choose the spot. And we're racing.", "ending_great").Affection(4),
			dsl.Option("Thanks for the evening. It was... educational.", "ending_meh").Affection(1),
		).
		Text("ending_good", "marina", "*long pause* ...You might be the first person to say that to me. *looks away* ...Same time next week?", "end").
		Text("ending_great", "marina", "Deal. But I'm warning you - I don't lose. *small genuine smile* This was... not terrible. At all.", "end").
		Text("ending_meh", "marina", "Educational. Right. Well... good night then. *swims away quickly*", "end").
		End("end").
		MustBuild()
}

func gillDate() *domain.Tree {
	return dsl.New("start").
		Title("Date with Gill").
		Speaker("gill", "Gill").
		Speaker("player", "You").
		Text("start", "gill", "Oh! H-hi! I didn't think you'd actually show up... *puffs up slightly* S-sorry, that happens when I'm nervous...", "q1").
		Choice("q1", "Gill is visibly nervous, slightly puffed up.",
			dsl.Option("It's okay, take your time. I'm in no rush.", "q1_kind").Affection(4),
			dsl.Option("You look adorable when you puff up like that!", "q1_cute").Affection(3),
			dsl.Option("Why would I not show up?", "q1_confused").Affection(2),
		).
		Text("q1_kind", "gill", "*slowly deflates* ...Thank you. That's... really nice of you. Most fish get scared when I puff up. This sunken ship is actually my favorite place.", "q2").
		Text("q1_cute", "gill", "*PUFFS UP MORE* D-don't say that! *tiny voice* ...but thank you... nobody's ever called it adorable before...", "q2").
		Text("q1_confused", "gill", "I dunno... I'm not exactly the most exciting fish in the sea. I'm small, I puff up weird, and I mostly just... think about stuff.", "q2").
		Choice("q2", "Gill has calmed down and seems more comfortable.",
			dsl.Option("What do you think about?", "q2_deep").Affection(5),
			dsl.Option("I like quiet. Tell me about this shipwreck.", "q2_place").Affection(3),
			dsl.Option("Do you ever wish you were a different kind of fish?", "q2_question").Affection(2),
		).
		Text("q2_deep", "gill", "Everything... and nothing. Like... do fish dream? If we do, what does the ocean dream about? Sometimes I sit in this shipwreck and imagine all the humans who once sailed on it. Where were they going? ...Sorry, is that weird?", "q3").
		Text("q2_place", "gill", "I found this place three tides ago. It's quiet. The wood creaks sometimes and it sounds like the ship is breathing. I come here to read the barnacles. ...They tell stories if you look closely.", "q3").
		Text("q2_question", "gill", "...Sometimes. But then I think... a swordfish can't puff up. A clownfish can't disappear into the sand. We all have our thing. Mine just happens to be... round.", "q3").
		Choice("q3", "The old ship creaks gently around you.",
			dsl.Option("I could listen to you think out loud all night, Gill.", "ending_good").Affection(6),
			dsl.Option("You're a lot deeper than people give you credit for.", "ending_great").Affection(4),
			dsl.Option("This has been... interesting. I should go.", "ending_meh").Affection(1),
		).
		Text("ending_good", "gill", "*completely deflates to normal size* ...Really? You... you mean that? *tiny smile* ...Next time I'll show you the part of the ship where the starlight comes through the hull. It's... it's beautiful.", "end").
		Text("ending_great", "gill", "*blushes* ...Thank you. That means more than you know. Maybe... maybe next time I won't puff up so much. *puffs up* ...Okay maybe a little.", "end").
		Text("ending_meh", "gill", "Oh... okay. Yeah. It was nice of you to come. *sinks a little* I'll just... be here. With the ship. It's fine.", "end").
		End("end").
		MustBuild()
}
