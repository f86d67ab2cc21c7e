package questions

var generalKnowledge = []Question{
	{Kind: KindOpen, Prompt: "What is the capital city of France?", Answer: "paris"},
	{Kind: KindOpen, Prompt: "Which element has the chemical symbol 'O'?", Answer: "oxygen"},
	{Kind: KindOpen, Prompt: "What is 7 multiplied by 8?", Answer: "56"},
	{Kind: KindOpen, Prompt: "Who wrote the play 'Romeo and Juliet'?", Answer: "william shakespeare"},
	{Kind: KindOpen, Prompt: "What planet is known as the Red Planet?", Answer: "mars"},
	{Kind: KindOpen, Prompt: "What is the largest mammal on Earth?", Answer: "blue whale"},
	{Kind: KindOpen, Prompt: "How many continents are there on Earth?", Answer: "7"},
	{Kind: KindOpen, Prompt: "Which ocean is the largest by area?", Answer: "pacific ocean"},
	{Kind: KindOpen, Prompt: "What gas do plants absorb from the atmosphere?", Answer: "carbon dioxide"},
	{Kind: KindOpen, Prompt: "Who painted the Mona Lisa?", Answer: "leonardo da vinci"},
	{Kind: KindOpen, Prompt: "What is the freezing point of water in degrees Celsius?", Answer: "0"},
	{Kind: KindOpen, Prompt: "Which country is home to the kangaroo?", Answer: "australia"},
	{Kind: KindOpen, Prompt: "What currency is used in Japan?", Answer: "yen"},
	{Kind: KindOpen, Prompt: "What is the largest organ in the human body?", Answer: "skin"},
	{Kind: KindOpen, Prompt: "What is the chemical formula for water?", Answer: "h2o"},
	{Kind: KindOpen, Prompt: "Who discovered penicillin?", Answer: "alexander fleming"},
	{Kind: KindOpen, Prompt: "What is the main language spoken in Brazil?", Answer: "portuguese"},
	{Kind: KindOpen, Prompt: "Which country has the Great Pyramid of Giza?", Answer: "egypt"},
	{Kind: KindOpen, Prompt: "What is the capital of India?", Answer: "new delhi"},
	{Kind: KindOpen, Prompt: "Which instrument has 88 keys?", Answer: "piano"},
	{Kind: KindTrueFalse, Prompt: "The Great Wall of China is visible from space with the naked eye.", Answer: "false"},
	{Kind: KindTrueFalse, Prompt: "The human adult skeleton has 206 bones.", Answer: "true"},
	{Kind: KindTrueFalse, Prompt: "Sound travels faster in air than in water.", Answer: "false"},
	{Kind: KindTrueFalse, Prompt: "Lightning never strikes the same place twice.", Answer: "false"},
	{Kind: KindTrueFalse, Prompt: "The chemical symbol for sodium is 'Na'.", Answer: "true"},
	{Kind: KindTrueFalse, Prompt: "Bats are blind.", Answer: "false"},
	{Kind: KindTrueFalse, Prompt: "Venus is the hottest planet in our solar system.", Answer: "true"},
	{Kind: KindTrueFalse, Prompt: "An octagon has six sides.", Answer: "false"},
	{Kind: KindTrueFalse, Prompt: "Shakespeare wrote 'Hamlet'.", Answer: "true"},
	{Kind: KindTrueFalse, Prompt: "The capital of Japan is Kyoto.", Answer: "false"},
}
