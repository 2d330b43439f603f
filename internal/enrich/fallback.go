package enrich

// Curated fallback entries used when live search returns nothing usable.
// Keys are lowercased destination names; values keep the same
// "Name - Description (Rating, Price)" shape the live path produces.

var fallbackAttractions = map[string][]string{
	"paris": {
		"Eiffel Tower - Iconic iron lattice tower built in 1889 (Rating: 4.7)",
		"Louvre Museum - Home to thousands of works of art including the Mona Lisa (Rating: 4.8)",
		"Notre-Dame Cathedral - Medieval Catholic cathedral on the Île de la Cité (Rating: 4.7)",
		"Arc de Triomphe - Monumental arch honoring those who fought for France (Rating: 4.7)",
		"Musée d'Orsay - Renowned for its collection of Impressionist masterpieces (Rating: 4.8)",
		"Montmartre - Historic art district with Sacré-Cœur Basilica (Rating: 4.6)",
		"Sainte-Chapelle - Gothic royal chapel with stunning stained glass (Rating: 4.8)",
		"Centre Pompidou - Modern and contemporary art museum (Rating: 4.4)",
		"Luxembourg Gardens - Beautiful park with formal gardens (Rating: 4.7)",
		"Champs-Élysées - Famous avenue known for luxury shops (Rating: 4.5)",
	},
	"london": {
		"British Museum - World-class collection of art and antiquities (Rating: 4.8)",
		"Tower of London - Historic castle and former royal residence (Rating: 4.7)",
		"Big Ben and Parliament - Iconic riverside landmark (Rating: 4.7)",
		"Buckingham Palace - Official London royal residence (Rating: 4.6)",
		"National Gallery - Art museum housing Western European paintings (Rating: 4.8)",
		"London Eye - Giant observation wheel offering panoramic views (Rating: 4.5)",
		"Tower Bridge - Famous Victorian bridge over the Thames (Rating: 4.7)",
		"Westminster Abbey - Gothic abbey church and site of royal coronations (Rating: 4.7)",
		"Tate Modern - Modern art gallery in a former power station (Rating: 4.6)",
		"Hyde Park - One of London's largest and most famous parks (Rating: 4.7)",
	},
	"new york": {
		"Statue of Liberty - Iconic symbol of freedom (Rating: 4.7)",
		"Central Park - Sprawling urban park in Manhattan (Rating: 4.8)",
		"Empire State Building - Famous Art Deco skyscraper (Rating: 4.7)",
		"Metropolitan Museum of Art - One of the world's largest art museums (Rating: 4.8)",
		"Times Square - Bustling commercial and entertainment center (Rating: 4.7)",
		"Brooklyn Bridge - Historic bridge connecting Manhattan and Brooklyn (Rating: 4.8)",
		"Museum of Modern Art - Home to famous modern artworks (Rating: 4.6)",
		"9/11 Memorial and One World Trade Center - Tribute to the 2001 attacks (Rating: 4.8)",
		"High Line - Elevated linear park on a former railway (Rating: 4.7)",
		"Broadway - Famous theater district (Rating: 4.8)",
	},
	"tokyo": {
		"Sensō-ji - Ancient Buddhist temple in Asakusa (Rating: 4.7)",
		"Meiji Jingu - Serene Shinto shrine surrounded by forest (Rating: 4.6)",
		"Tokyo Tower - Iconic communications and observation tower (Rating: 4.5)",
		"Tokyo Skytree - Tallest tower in Japan with observation decks (Rating: 4.7)",
		"Shibuya Crossing - Famous busy intersection and meeting place (Rating: 4.5)",
		"Shinjuku Gyoen National Garden - Traditional Japanese garden (Rating: 4.8)",
		"Tokyo National Museum - Japan's oldest and largest museum (Rating: 4.7)",
		"Ueno Park - Spacious city park with museums and a zoo (Rating: 4.6)",
		"Tsukiji Outer Market - Famous food market with fresh seafood (Rating: 4.6)",
		"Akihabara - Electronics and anime shopping district (Rating: 4.5)",
	},
}

var fallbackRestaurants = map[string][]string{
	"paris": {
		"Le Potager du Marais - Traditional French vegetarian cuisine (Rating: 4.5, Price: $$)",
		"Hank Burger - Popular plant-based burger restaurant (Rating: 4.6, Price: $)",
		"Le Grenier de Notre-Dame - One of the oldest vegetarian restaurants in Paris (Rating: 4.3, Price: $$)",
		"Breizh Café - Famous crêperie with vegetarian options (Rating: 4.6, Price: $$)",
		"L'As du Fallafel - Famous falafel shop in the Marais district (Rating: 4.7, Price: $)",
		"Le Comptoir du Relais - Classic French bistro with seasonal menu (Rating: 4.5, Price: $$$)",
		"Bistrot Paul Bert - Traditional French cuisine (Rating: 4.6, Price: $$$)",
		"Chez Janou - Provençal bistro known for chocolate mousse (Rating: 4.5, Price: $$)",
	},
	"london": {
		"Mildreds - International vegetarian restaurant (Rating: 4.6, Price: $$)",
		"Dishoom - Bombay-style café with many vegetarian dishes (Rating: 4.7, Price: $$)",
		"The Ivy - Classic British dining with vegetarian options (Rating: 4.5, Price: $$$)",
		"Borough Market - Food market with varied street eats (Rating: 4.8, Price: $)",
		"Ottolenghi - Mediterranean-inspired cuisine (Rating: 4.6, Price: $$$)",
		"Wahaca - Mexican street food with vegetarian options (Rating: 4.4, Price: $$)",
		"Padella - Famous pasta restaurant (Rating: 4.7, Price: $$)",
	},
	"new york": {
		"Superiority Burger - Vegetarian burger joint (Rating: 4.7, Price: $)",
		"Dirt Candy - Upscale vegetarian restaurant (Rating: 4.6, Price: $$$)",
		"Hangawi - Korean vegetarian cuisine (Rating: 4.5, Price: $$$)",
		"The Butcher's Daughter - Vegetable-focused restaurant (Rating: 4.4, Price: $$)",
		"Gramercy Tavern - Upscale dining with vegetarian tasting menu (Rating: 4.7, Price: $$$$)",
		"Taim - Middle Eastern vegetarian food (Rating: 4.6, Price: $)",
	},
	"tokyo": {
		"Ichiran Ramen - Popular ramen chain with private booths (Rating: 4.7, Price: $$)",
		"Gonpachi Nishi-Azabu - Izakaya that inspired a famous film scene (Rating: 4.5, Price: $$$)",
		"Uobei Shibuya - Conveyor belt sushi with tablet ordering (Rating: 4.4, Price: $)",
		"Kagurazaka Ishikawa - Refined kaiseki dining (Rating: 4.8, Price: $$$$)",
		"Afuri - Yuzu-flavored ramen chain (Rating: 4.6, Price: $$)",
		"Tonkatsu Maisen - Famous for perfectly fried pork cutlets (Rating: 4.5, Price: $$)",
	},
}

var fallbackAccommodations = map[string][]string{
	"paris": {
		"Hotel Fabric - Stylish 4-star hotel in the 11th arrondissement (Rating: 4.7, Price: $$$)",
		"Hotel Emile - Boutique hotel in the Marais district (Rating: 4.5, Price: $$)",
		"Le Pavillon de la Reine - Luxury hotel on Place des Vosges (Rating: 4.8, Price: $$$$)",
		"Hotel Marignan - Affordable hotel in the Latin Quarter (Rating: 4.2, Price: $)",
		"Mama Shelter Paris East - Trendy budget hotel (Rating: 4.3, Price: $$)",
	},
	"london": {
		"Strand Palace Hotel - Historic hotel in central London (Rating: 4.3, Price: $$$)",
		"The Z Hotel Piccadilly - Modern hotel in the theater district (Rating: 4.4, Price: $$)",
		"Premier Inn London County Hall - Affordable chain hotel near the London Eye (Rating: 4.5, Price: $$)",
		"CitizenM Tower of London - Modern hotel with rooftop bar (Rating: 4.7, Price: $$$)",
		"The Montague on the Gardens - Luxury hotel near the British Museum (Rating: 4.8, Price: $$$$)",
	},
	"new york": {
		"Pod 51 Hotel - Modern, compact rooms in Midtown East (Rating: 4.0, Price: $$)",
		"CitizenM New York Times Square - Modern hotel with affordable luxury (Rating: 4.5, Price: $$$)",
		"The Jane Hotel - Historic budget hotel with compact cabins (Rating: 4.0, Price: $)",
		"Freehand New York - Hip hotel with great dining options (Rating: 4.4, Price: $$$)",
		"The Beekman - Historic luxury hotel in the Financial District (Rating: 4.7, Price: $$$$)",
	},
	"tokyo": {
		"Hotel Gracery Shinjuku - Modern hotel with a Godzilla statue (Rating: 4.5, Price: $$$)",
		"UNPLAN Kagurazaka - Modern hostel in a central location (Rating: 4.7, Price: $)",
		"Park Hotel Tokyo - Artist-designed rooms with city views (Rating: 4.5, Price: $$$)",
		"Nine Hours Shinjuku - Modern capsule hotel experience (Rating: 4.3, Price: $)",
		"The Gate Hotel Kaminarimon - Boutique hotel near Sensō-ji (Rating: 4.6, Price: $$$)",
	},
}
