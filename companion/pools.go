// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package companion

import "github.com/poiesic/materna/core"

// moodPools maps each mood tag to its fixed pool of supportive
// messages. Curated once; selection among pool members is uniform.
var moodPools = map[core.Mood][]string{
	core.MoodHappy: {
		"Que alegria sentir isso com você! Guarde esse momento no coração. 💛",
		"Dias felizes assim merecem ser lembrados. Que bom que você registrou!",
		"Sua felicidade ilumina tudo ao redor. Aproveite cada segundo! ✨",
	},
	core.MoodGrateful: {
		"A gratidão transforma o que temos em suficiente. Que lindo sentimento. 🙏",
		"Agradecer pelas pequenas coisas é um superpoder. Você está indo muito bem.",
		"Que bom ler isso! Momentos de gratidão fortalecem o coração.",
	},
	core.MoodCalm: {
		"Essa paz que você sente é um presente. Respire fundo e aproveite. 😌",
		"Momentos de calma são preciosos. Você merece essa tranquilidade.",
		"Que serenidade boa! Seu bebê sente essa paz junto com você.",
	},
	core.MoodTired: {
		"Cansaço é sinal de que você está dando tudo de si. Descanse sem culpa. 💤",
		"Está tudo bem desacelerar. Seu corpo está fazendo um trabalho incrível.",
		"Você não precisa dar conta de tudo hoje. Permita-se descansar.",
	},
	core.MoodAnxious: {
		"Respire fundo. A ansiedade passa, e você não está sozinha nessa. 🌬️",
		"É normal sentir ansiedade. Um passo de cada vez, um dia de cada vez.",
		"Seus sentimentos são válidos. Que tal uma pausa com uma respiração lenta?",
	},
	core.MoodInsecure: {
		"Você é mais capaz do que imagina. A insegurança não define você. 💪",
		"Nenhuma mãe tem todas as respostas. Você está aprendendo, e isso basta.",
		"Seja gentil com você mesma. Você está fazendo o seu melhor, e isso é muito.",
	},
	core.MoodSad: {
		"Sinto muito que o dia esteja pesado. Estou aqui com você. 🫂",
		"Está tudo bem não estar bem. Dias difíceis também passam.",
		"Seja acolhedora com a sua tristeza. Você não precisa enfrentá-la sozinha.",
	},
	core.MoodOverwhelmed: {
		"Quando tudo parece demais, comece pelo menor passo. Você dá conta. 🌱",
		"Respire. Você não precisa resolver tudo agora, só o próximo momento.",
		"Sobrecarga é um pedido de pausa. Permita-se pedir ajuda hoje.",
	},
	core.MoodHopeful: {
		"A esperança é uma semente linda. Continue regando esse sentimento. 🌈",
		"Que bom sentir esperança! Coisas boas estão a caminho.",
		"Seu otimismo é contagiante. O futuro agradece essa energia.",
	},
	core.MoodLoving: {
		"Quanto amor! Seu bebê é muito sortudo de ter você. 🥰",
		"O amor que você sente já está construindo um lar. Que lindo.",
		"Esse carinho todo transborda. Guarde esse registro para reler sempre.",
	},
}

// celebratoryPool templates a milestone label into a festive message.
var celebratoryPool = []string{
	"Que momento especial: %s! Guarde essa lembrança para sempre. 🎉",
	"%s! Cada conquista dessas merece uma festa. 🌟",
	"Uau, %s! O tempo voa e cada marco é um presente. 💝",
}

// specialWeekMessages are exact-match gestational weeks with their own
// message, taking priority over the every-4th-week rule.
var specialWeekMessages = map[int]string{
	12: "Semana 12! O primeiro trimestre está completo. O risco inicial diminuiu muito. 🎊",
	20: "Semana 20! Metade do caminho! Seu bebê já pode ouvir sua voz. 💕",
	28: "Semana 28! Terceiro trimestre começando. A reta final chegou. 🌟",
	37: "Semana 37! Seu bebê já é considerado a termo. Falta pouquinho! 🎀",
	40: "Semana 40! O grande momento pode chegar a qualquer instante. ❤️",
}

// fourthWeekPool serves weeks divisible by 4 that are not special.
var fourthWeekPool = []string{
	"Semana %d completada! Mais um mês de jornada juntas. 🗓️",
	"Você chegou à semana %d! Cada semana é uma vitória. 🌼",
	"Semana %d! Seu corpo e seu bebê seguem crescendo juntos. 🤱",
}

// defaultWeekMessage covers every remaining week.
const defaultWeekMessage = "Mais uma semana de gestação vencida. Você está indo muito bem! 💛"
