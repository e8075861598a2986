package game

// BuiltinPackName names the scenario pack compiled into the binary.
const BuiltinPackName = "rights-vs-duties"

// BuiltinPack returns the default "Rights vs. Duties" scenarios. A fresh
// copy is returned on every call so callers may not alias each other.
func BuiltinPack() *Pack {
	return &Pack{
		Name: BuiltinPackName,
		Scenarios: []Scenario{
			{
				ID:          "university_protest",
				Title:       "University Protest",
				Description: "Students plan a march across campus against a fee hike. The administration worries about classes and safety.",
				Tokens: []Token{
					{ID: "right_speech", Label: "Freedom of Speech", Effect: Effect{Freedom: 15, Order: -10}, Explanation: "Article 19(1)(a) guarantees the right to speak and protest peacefully. Letting the march go ahead protects that right, but disruption follows."},
					{ID: "duty_order", Label: "Maintain Public Order", Effect: Effect{Freedom: -8, Order: 12}, Explanation: "Reasonable restrictions under Article 19(2) allow limits in the interest of public order. Classes continue, but voices go unheard."},
					{ID: "balance_dialogue", Label: "Open a Dialogue", Effect: Effect{Freedom: 5, Order: 5}, Explanation: "A designated protest zone and a meeting with the dean respect both the right to protest and the duty to keep campus safe."},
				},
				Events: []RandomEvent{
					{Probability: 0.3, Effect: Effect{Freedom: -5, Order: -15}, Description: "Rumours spread online and the crowd turns tense at the gates."},
				},
			},
			{
				ID:          "festival_loudspeakers",
				Title:       "Festival Loudspeakers",
				Description: "A community wants loudspeakers for a week-long religious festival. Hospital staff nearby ask for quiet after 10 pm.",
				Tokens: []Token{
					{ID: "right_religion", Label: "Freedom of Religion", Effect: Effect{Freedom: 10, Order: -8}, Explanation: "Article 25 protects the free practice of religion. The festival runs as planned, at full volume."},
					{ID: "duty_harmony", Label: "Promote Harmony", Effect: Effect{Freedom: -5, Order: 10}, Explanation: "Article 51A(e) asks every citizen to promote harmony among all people. Loudspeakers are banned near the hospital."},
					{ID: "time_limits", Label: "Set Time Limits", Effect: Effect{Freedom: 4, Order: 6}, Explanation: "The festival keeps its music, and the neighbourhood keeps its nights. Both sides give a little."},
				},
				Events: []RandomEvent{
					{Probability: 0.25, Effect: Effect{Freedom: 0, Order: -10}, Description: "A neighbourhood complaint escalates into a scuffle outside the pandal."},
					{Probability: 0.15, Effect: Effect{Freedom: 5, Order: 0}, Description: "Community elders broker a compromise that everyone celebrates."},
				},
			},
			{
				ID:          "factory_by_the_river",
				Title:       "Factory by the River",
				Description: "A new factory promises hundreds of jobs, but villagers downstream fear the river will be polluted.",
				Tokens: []Token{
					{ID: "right_livelihood", Label: "Right to Livelihood", Effect: Effect{Freedom: 10, Order: -6}, Explanation: "Courts have read the right to livelihood into Article 21. The factory opens and families find work."},
					{ID: "duty_environment", Label: "Protect the Environment", Effect: Effect{Freedom: -6, Order: 10}, Explanation: "Article 51A(g) makes protecting rivers and forests a duty of every citizen. The project is put on hold."},
					{ID: "green_permit", Label: "Conditional Permit", Effect: Effect{Freedom: 3, Order: 4}, Explanation: "The factory may open if it treats its waste. Jobs arrive more slowly, but the river stays clean."},
				},
				Events: []RandomEvent{
					{Probability: 0.2, Effect: Effect{Freedom: -4, Order: -12}, Description: "A chemical spill turns the river orange and sparks public anger."},
				},
			},
			{
				ID:          "viral_misinformation",
				Title:       "Viral Misinformation",
				Description: "A fake message about contaminated milk spreads across messaging apps. Shops are being mobbed.",
				Tokens: []Token{
					{ID: "right_expression", Label: "Protect Expression", Effect: Effect{Freedom: 12, Order: -12}, Explanation: "Blocking messages could silence honest speech too. People keep sharing freely, rumours included."},
					{ID: "duty_scientific_temper", Label: "Scientific Temper", Effect: Effect{Freedom: -4, Order: 8}, Explanation: "Article 51A(h) asks citizens to develop a scientific temper. Officials publish lab results and ask people to verify before forwarding."},
					{ID: "fact_check_network", Label: "Citizen Fact-Checkers", Effect: Effect{Freedom: 6, Order: 4}, Explanation: "Volunteers debunk the rumour in local languages without anyone being censored."},
				},
				Events: []RandomEvent{
					{Probability: 0.35, Effect: Effect{Freedom: -6, Order: -8}, Description: "A doctored video goes viral and triggers panic buying."},
				},
			},
			{
				ID:          "transport_strike",
				Title:       "Transport Strike",
				Description: "Bus drivers announce a strike and a march through the city centre over unpaid wages.",
				Tokens: []Token{
					{ID: "right_assembly", Label: "Right to Assemble", Effect: Effect{Freedom: 12, Order: -8}, Explanation: "Article 19(1)(b) protects peaceful assembly without arms. The march fills the streets."},
					{ID: "duty_public_property", Label: "Safeguard Public Property", Effect: Effect{Freedom: -6, Order: 12}, Explanation: "Article 51A(i) asks citizens to safeguard public property. Police keep the march away from the depots."},
					{ID: "negotiated_march", Label: "Negotiated Route", Effect: Effect{Freedom: 5, Order: 3}, Explanation: "Unions and police agree on a route. The message is heard and the buses stay safe."},
				},
				Events: []RandomEvent{
					{Probability: 0.2, Effect: Effect{Freedom: 0, Order: -15}, Description: "A few marchers smash bus windows and the city shuts down."},
					{Probability: 0.1, Effect: Effect{Freedom: 6, Order: 4}, Description: "Citizens volunteer to clean up the route after the march."},
				},
			},
		},
	}
}
