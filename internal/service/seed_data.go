package service

// seedAdjective is one word of a seeded list
type seedAdjective struct {
	Word        string
	Explanation string
	Example     string
}

// seedList describes a premium list installed at startup
type seedList struct {
	Name        string
	Slug        string
	Description string
	Adjectives  []seedAdjective
}

// The standard list every visitor can sort without logging in
var defaultAdjectives = []seedAdjective{
	{
		Word:        "zuverlässig",
		Explanation: "Du machst, was du versprochen hast.",
		Example:     "Wenn ich sage, ich bringe etwas mit, dann mache ich das auch.",
	},
	{
		Word:        "teamfähig",
		Explanation: "Du kannst gut mit anderen zusammenarbeiten.",
		Example:     "In Gruppenarbeiten höre ich zu und mache meinen Teil.",
	},
	{
		Word:        "hilfsbereit",
		Explanation: "Du unterstützt andere, wenn sie Hilfe brauchen.",
		Example:     "Wenn jemand etwas nicht versteht, erkläre ich es ruhig.",
	},
	{
		Word:        "freundlich",
		Explanation: "Du gehst respektvoll und nett mit anderen um.",
		Example:     "Ich grüße und bleibe höflich, auch wenn ich gestresst bin.",
	},
	{
		Word:        "kommunikativ",
		Explanation: "Du kannst Dinge gut sagen oder erklären.",
		Example:     "Ich kann in Worten sagen, was ich brauche oder meine.",
	},
	{
		Word:        "empathisch",
		Explanation: "Du merkst, wie es anderen geht, und nimmst das ernst.",
		Example:     "Ich sehe, wenn jemand traurig ist, und frage nach.",
	},
	{
		Word:        "geduldig",
		Explanation: "Du bleibst dran, auch wenn es länger dauert.",
		Example:     "Ich übe weiter, auch wenn es nicht sofort klappt.",
	},
	{
		Word:        "gelassen",
		Explanation: "Du bleibst eher ruhig, wenn etwas schiefgeht.",
		Example:     "Wenn ich einen Fehler mache, atme ich durch und mache weiter.",
	},
	{
		Word:        "mutig",
		Explanation: "Du traust dich, Neues auszuprobieren oder zu sagen.",
		Example:     "Ich melde mich, auch wenn ich nicht 100% sicher bin.",
	},
	{
		Word:        "selbstständig",
		Explanation: "Du kannst Aufgaben allein beginnen und durchziehen.",
		Example:     "Ich starte eine Aufgabe ohne dauernd nachzufragen.",
	},
	{
		Word:        "verantwortungsbewusst",
		Explanation: "Du denkst an Folgen und passt auf.",
		Example:     "Ich gehe sorgfältig mit Material und Geräten um.",
	},
	{
		Word:        "ordentlich",
		Explanation: "Du hältst Sachen übersichtlich und sauber.",
		Example:     "Ich räume meinen Arbeitsplatz am Ende auf.",
	},
	{
		Word:        "pünktlich",
		Explanation: "Du bist rechtzeitig da und beginnst rechtzeitig.",
		Example:     "Ich bin zur Stunde da, wenn es losgeht.",
	},
	{
		Word:        "konzentriert",
		Explanation: "Du kannst deine Aufmerksamkeit bei einer Sache behalten.",
		Example:     "Ich arbeite mehrere Minuten ohne abzuschweifen.",
	},
	{
		Word:        "aufmerksam",
		Explanation: "Du bemerkst Details und was um dich passiert.",
		Example:     "Ich sehe, wenn etwas fehlt oder anders ist.",
	},
	{
		Word:        "genau",
		Explanation: "Du arbeitest sorgfältig und prüfst deine Ergebnisse.",
		Example:     "Ich kontrolliere, ob alles stimmt, bevor ich abgebe.",
	},
	{
		Word:        "strukturiert",
		Explanation: "Du gehst Schritt für Schritt vor.",
		Example:     "Ich mache zuerst einen Plan und arbeite dann ab.",
	},
	{
		Word:        "analytisch",
		Explanation: "Du versuchst zu verstehen, warum etwas so ist.",
		Example:     "Ich frage: 'Woran liegt das?' und suche die Ursache.",
	},
	{
		Word:        "kreativ",
		Explanation: "Du hast eigene Ideen und findest neue Lösungen.",
		Example:     "Ich finde eine andere Möglichkeit, etwas zu gestalten.",
	},
	{
		Word:        "lernbereit",
		Explanation: "Du willst Neues lernen und üben.",
		Example:     "Ich probiere Tipps aus und werde besser.",
	},
	{
		Word:        "praktisch",
		Explanation: "Du packst an und machst Dinge gerne 'hands-on'.",
		Example:     "Ich baue lieber etwas, statt nur darüber zu reden.",
	},
	{
		Word:        "handwerklich geschickt",
		Explanation: "Du kannst gut mit Werkzeug/Material umgehen.",
		Example:     "Ich kann sauber schneiden, kleben oder schrauben.",
	},
	{
		Word:        "feinmotorisch",
		Explanation: "Du kannst kleine, genaue Bewegungen gut steuern.",
		Example:     "Ich kann sehr genau zeichnen oder kleine Teile einsetzen.",
	},
	{
		Word:        "ausdauernd",
		Explanation: "Du bleibst dran, auch wenn es anstrengend ist.",
		Example:     "Ich gebe nicht schnell auf, sondern mache weiter.",
	},
	{
		Word:        "belastbar",
		Explanation: "Du kannst mit Stress umgehen, ohne sofort zusammenzuklappen.",
		Example:     "Wenn viel los ist, bleibe ich handlungsfähig.",
	},
	{
		Word:        "flexibel",
		Explanation: "Du kannst dich umstellen, wenn sich etwas ändert.",
		Example:     "Wenn der Plan sich ändert, mache ich trotzdem weiter.",
	},
	{
		Word:        "neugierig",
		Explanation: "Du willst wissen, wie etwas funktioniert.",
		Example:     "Ich stelle Fragen und probiere Dinge aus.",
	},
	{
		Word:        "technisch interessiert",
		Explanation: "Du hast Lust auf Technik/Computer/Geräte.",
		Example:     "Ich finde es spannend, wie Apps, Maschinen oder Geräte funktionieren.",
	},
	{
		Word:        "serviceorientiert",
		Explanation: "Du achtest darauf, dass es anderen gut geht.",
		Example:     "Ich frage: 'Kann ich dir helfen?' und bleibe freundlich.",
	},
	{
		Word:        "fair",
		Explanation: "Du behandelst andere gerecht.",
		Example:     "Ich halte Regeln ein und finde, alle sollen eine Chance haben.",
	},
}

// Curated lists available to registered teachers, shareable via QR code
var premiumLists = []seedList{
	{
		Name:        "Grosse Liste",
		Slug:        "grosse-liste",
		Description: "Erweiterte Liste mit 50 Adjektiven für eine umfassendere Selbstreflexion",
		Adjectives: []seedAdjective{
			{
				Word:        "zuverlässig",
				Explanation: "Du machst, was du versprochen hast.",
				Example:     "Wenn ich sage, ich bringe etwas mit, dann mache ich das auch.",
			},
			{
				Word:        "teamfähig",
				Explanation: "Du kannst gut mit anderen zusammenarbeiten.",
				Example:     "In Gruppenarbeiten höre ich zu und mache meinen Teil.",
			},
			{
				Word:        "hilfsbereit",
				Explanation: "Du unterstützt andere, wenn sie Hilfe brauchen.",
				Example:     "Wenn jemand etwas nicht versteht, erkläre ich es ruhig.",
			},
			{
				Word:        "freundlich",
				Explanation: "Du gehst respektvoll und nett mit anderen um.",
				Example:     "Ich grüße und bleibe höflich, auch wenn ich gestresst bin.",
			},
			{
				Word:        "kommunikativ",
				Explanation: "Du kannst Dinge gut sagen oder erklären.",
				Example:     "Ich kann in Worten sagen, was ich brauche oder meine.",
			},
			{
				Word:        "empathisch",
				Explanation: "Du merkst, wie es anderen geht, und nimmst das ernst.",
				Example:     "Ich sehe, wenn jemand traurig ist, und frage nach.",
			},
			{
				Word:        "geduldig",
				Explanation: "Du bleibst dran, auch wenn es länger dauert.",
				Example:     "Ich übe weiter, auch wenn es nicht sofort klappt.",
			},
			{
				Word:        "gelassen",
				Explanation: "Du bleibst eher ruhig, wenn etwas schiefgeht.",
				Example:     "Wenn ich einen Fehler mache, atme ich durch und mache weiter.",
			},
			{
				Word:        "mutig",
				Explanation: "Du traust dich, Neues auszuprobieren oder zu sagen.",
				Example:     "Ich melde mich, auch wenn ich nicht 100% sicher bin.",
			},
			{
				Word:        "selbstständig",
				Explanation: "Du kannst Aufgaben allein beginnen und durchziehen.",
				Example:     "Ich starte eine Aufgabe ohne dauernd nachzufragen.",
			},
			{
				Word:        "verantwortungsbewusst",
				Explanation: "Du denkst an Folgen und passt auf.",
				Example:     "Ich gehe sorgfältig mit Material und Geräten um.",
			},
			{
				Word:        "ordentlich",
				Explanation: "Du hältst Sachen übersichtlich und sauber.",
				Example:     "Ich räume meinen Arbeitsplatz am Ende auf.",
			},
			{
				Word:        "pünktlich",
				Explanation: "Du bist rechtzeitig da und beginnst rechtzeitig.",
				Example:     "Ich bin zur Stunde da, wenn es losgeht.",
			},
			{
				Word:        "konzentriert",
				Explanation: "Du kannst deine Aufmerksamkeit bei einer Sache behalten.",
				Example:     "Ich arbeite mehrere Minuten ohne abzuschweifen.",
			},
			{
				Word:        "aufmerksam",
				Explanation: "Du bemerkst Details und was um dich passiert.",
				Example:     "Ich sehe, wenn etwas fehlt oder anders ist.",
			},
			{
				Word:        "genau",
				Explanation: "Du arbeitest sorgfältig und prüfst deine Ergebnisse.",
				Example:     "Ich kontrolliere, ob alles stimmt, bevor ich abgebe.",
			},
			{
				Word:        "strukturiert",
				Explanation: "Du gehst Schritt für Schritt vor.",
				Example:     "Ich mache zuerst einen Plan und arbeite dann ab.",
			},
			{
				Word:        "analytisch",
				Explanation: "Du versuchst zu verstehen, warum etwas so ist.",
				Example:     "Ich frage: 'Woran liegt das?' und suche die Ursache.",
			},
			{
				Word:        "kreativ",
				Explanation: "Du hast eigene Ideen und findest neue Lösungen.",
				Example:     "Ich finde eine andere Möglichkeit, etwas zu gestalten.",
			},
			{
				Word:        "lernbereit",
				Explanation: "Du willst Neues lernen und üben.",
				Example:     "Ich probiere Tipps aus und werde besser.",
			},
			{
				Word:        "praktisch",
				Explanation: "Du packst an und machst Dinge gerne 'hands-on'.",
				Example:     "Ich baue lieber etwas, statt nur darüber zu reden.",
			},
			{
				Word:        "handwerklich geschickt",
				Explanation: "Du kannst gut mit Werkzeug/Material umgehen.",
				Example:     "Ich kann sauber schneiden, kleben oder schrauben.",
			},
			{
				Word:        "feinmotorisch",
				Explanation: "Du kannst kleine, genaue Bewegungen gut steuern.",
				Example:     "Ich kann sehr genau zeichnen oder kleine Teile einsetzen.",
			},
			{
				Word:        "ausdauernd",
				Explanation: "Du bleibst dran, auch wenn es anstrengend ist.",
				Example:     "Ich gebe nicht schnell auf, sondern mache weiter.",
			},
			{
				Word:        "belastbar",
				Explanation: "Du kannst mit Stress umgehen, ohne sofort zusammenzuklappen.",
				Example:     "Wenn viel los ist, bleibe ich handlungsfähig.",
			},
			{
				Word:        "flexibel",
				Explanation: "Du kannst dich umstellen, wenn sich etwas ändert.",
				Example:     "Wenn der Plan sich ändert, mache ich trotzdem weiter.",
			},
			{
				Word:        "neugierig",
				Explanation: "Du willst wissen, wie etwas funktioniert.",
				Example:     "Ich stelle Fragen und probiere Dinge aus.",
			},
			{
				Word:        "technisch interessiert",
				Explanation: "Du hast Lust auf Technik/Computer/Geräte.",
				Example:     "Ich finde es spannend, wie Apps, Maschinen oder Geräte funktionieren.",
			},
			{
				Word:        "serviceorientiert",
				Explanation: "Du achtest darauf, dass es anderen gut geht.",
				Example:     "Ich frage: 'Kann ich dir helfen?' und bleibe freundlich.",
			},
			{
				Word:        "fair",
				Explanation: "Du behandelst andere gerecht.",
				Example:     "Ich halte Regeln ein und finde, alle sollen eine Chance haben.",
			},
			{
				Word:        "ehrlich",
				Explanation: "Du sagst die Wahrheit, auch wenn es schwierig ist.",
				Example:     "Ich gebe zu, wenn ich einen Fehler gemacht habe.",
			},
			{
				Word:        "respektvoll",
				Explanation: "Du behandelst andere mit Achtung und Wertschätzung.",
				Example:     "Ich lasse andere ausreden und nehme ihre Meinung ernst.",
			},
			{
				Word:        "organisiert",
				Explanation: "Du behältst den Überblick und planst voraus.",
				Example:     "Ich weiss, was ich heute und morgen erledigen muss.",
			},
			{
				Word:        "motiviert",
				Explanation: "Du hast Antrieb und gehst Aufgaben mit Energie an.",
				Example:     "Ich freue mich auf neue Projekte und packe sie an.",
			},
			{
				Word:        "reflektiert",
				Explanation: "Du denkst über dein Verhalten nach und lernst daraus.",
				Example:     "Nach einer Aufgabe überlege ich, was ich besser machen könnte.",
			},
			{
				Word:        "offen",
				Explanation: "Du bist aufgeschlossen für neue Ideen und Menschen.",
				Example:     "Ich probiere gerne Neues aus und lerne neue Leute kennen.",
			},
			{
				Word:        "entscheidungsfreudig",
				Explanation: "Du kannst Entscheidungen treffen, ohne ewig zu zögern.",
				Example:     "Ich wäge ab und entscheide mich dann klar.",
			},
			{
				Word:        "diplomatisch",
				Explanation: "Du kannst Konflikte entschärfen und vermitteln.",
				Example:     "Ich finde einen Kompromiss, mit dem alle leben können.",
			},
			{
				Word:        "sorgfältig",
				Explanation: "Du achtest auf Qualität und Details bei der Arbeit.",
				Example:     "Ich schaue nochmal drüber, bevor ich etwas abgebe.",
			},
			{
				Word:        "selbstkritisch",
				Explanation: "Du erkennst eigene Schwächen und arbeitest daran.",
				Example:     "Ich weiss, wo ich mich verbessern kann, und arbeite daran.",
			},
			{
				Word:        "tolerant",
				Explanation: "Du akzeptierst, dass andere anders sind oder denken.",
				Example:     "Ich respektiere andere Meinungen, auch wenn ich sie nicht teile.",
			},
			{
				Word:        "initiativ",
				Explanation: "Du ergreifst von dir aus Initiative und wartest nicht ab.",
				Example:     "Ich schlage neue Ideen vor und setze sie um.",
			},
			{
				Word:        "zielstrebig",
				Explanation: "Du verfolgst deine Ziele konsequent.",
				Example:     "Ich weiss, was ich erreichen will, und arbeite darauf hin.",
			},
			{
				Word:        "anpassungsfähig",
				Explanation: "Du kommst mit verschiedenen Situationen gut zurecht.",
				Example:     "Auch in neuen Umgebungen finde ich mich schnell zurecht.",
			},
			{
				Word:        "durchsetzungsfähig",
				Explanation: "Du kannst deine Meinung vertreten und dich behaupten.",
				Example:     "Ich sage klar, was ich denke, ohne andere zu verletzen.",
			},
			{
				Word:        "kritikfähig",
				Explanation: "Du kannst Kritik annehmen und konstruktiv damit umgehen.",
				Example:     "Feedback nehme ich an und versuche, mich zu verbessern.",
			},
			{
				Word:        "gewissenhaft",
				Explanation: "Du arbeitest pflichtbewusst und verlässlich.",
				Example:     "Aufgaben erledige ich vollständig und so gut ich kann.",
			},
			{
				Word:        "begeisterungsfähig",
				Explanation: "Du kannst dich für Themen begeistern und andere anstecken.",
				Example:     "Wenn mich etwas interessiert, stecke ich andere damit an.",
			},
			{
				Word:        "lösungsorientiert",
				Explanation: "Du suchst nach Lösungen statt Problemen.",
				Example:     "Ich frage: 'Wie können wir das lösen?' statt zu jammern.",
			},
			{
				Word:        "authentisch",
				Explanation: "Du bist echt und verstellt dich nicht.",
				Example:     "Ich bleibe mir selbst treu und spiele keine Rolle.",
			},
		},
	},
	{
		Name:        "Sport",
		Slug:        "sport",
		Description: "40 Adjektive zu sportlichen Fähigkeiten: Kondition, Koordination, Sportintelligenz, Teamfähigkeit und persönliche Eigenschaften",
		Adjectives: []seedAdjective{
			{
				Word:        "ausdauernd",
				Explanation: "Du kannst lange durchhalten, ohne müde zu werden.",
				Example:     "Ich kann lange laufen, ohne schnell aus der Puste zu kommen.",
			},
			{
				Word:        "schnell",
				Explanation: "Du reagierst und bewegst dich rasch.",
				Example:     "Ich bin oft als Erstes beim Ball oder an der Ziellinie.",
			},
			{
				Word:        "kraftvoll",
				Explanation: "Du hast körperliche Stärke und kannst sie einsetzen.",
				Example:     "Ich kann schwere Gewichte heben oder kräftig werfen.",
			},
			{
				Word:        "beweglich",
				Explanation: "Dein Körper ist dehnbar und flexibel.",
				Example:     "Ich kann mich gut dehnen und habe einen grossen Bewegungsradius.",
			},
			{
				Word:        "explosiv",
				Explanation: "Du kannst in kurzer Zeit viel Kraft freisetzen.",
				Example:     "Ich kann hoch springen oder schnell ansprinten.",
			},
			{
				Word:        "energiegeladen",
				Explanation: "Du hast viel Energie und Power.",
				Example:     "Ich bin voller Tatendrang und kann lange aktiv sein.",
			},
			{
				Word:        "sprintstark",
				Explanation: "Du kannst kurze Strecken sehr schnell laufen.",
				Example:     "Auf kurze Distanz bin ich kaum zu schlagen.",
			},
			{
				Word:        "widerstandsfähig",
				Explanation: "Du erholst dich schnell und bist robust.",
				Example:     "Nach einer Anstrengung bin ich schnell wieder fit.",
			},
			{
				Word:        "koordiniert",
				Explanation: "Du steuerst deine Bewegungen präzise und abgestimmt.",
				Example:     "Ich kann mehrere Bewegungen gleichzeitig gut ausführen.",
			},
			{
				Word:        "geschickt",
				Explanation: "Du beherrschst Bewegungen technisch gut.",
				Example:     "Neue Bewegungsabläufe lerne ich relativ schnell.",
			},
			{
				Word:        "reaktionsschnell",
				Explanation: "Du reagierst blitzschnell auf Situationen.",
				Example:     "Ich erkenne früh, was passiert, und handle sofort.",
			},
			{
				Word:        "rhythmusgefühl",
				Explanation: "Du bewegst dich rhythmisch und im Takt.",
				Example:     "Ich kann Bewegungen gut an einen Rhythmus anpassen.",
			},
			{
				Word:        "gleichgewichtsstark",
				Explanation: "Du behältst auch in schwierigen Situationen das Gleichgewicht.",
				Example:     "Ich stehe sicher, auch wenn es wackelig wird.",
			},
			{
				Word:        "wendig",
				Explanation: "Du kannst schnell die Richtung ändern.",
				Example:     "Ich kann Gegner umdribbeln oder schnell ausweichen.",
			},
			{
				Word:        "ballsicher",
				Explanation: "Du gehst sicher mit Bällen um.",
				Example:     "Ich kann Bälle gut fangen, passen und führen.",
			},
			{
				Word:        "präzise",
				Explanation: "Du triffst genau, wohin du zielst.",
				Example:     "Meine Würfe, Schüsse oder Pässe sind meist genau.",
			},
			{
				Word:        "spielintelligent",
				Explanation: "Du verstehst Spielsituationen und handelst klug.",
				Example:     "Ich sehe, wo Lücken sind, und nutze sie.",
			},
			{
				Word:        "taktisch",
				Explanation: "Du denkst strategisch und planst voraus.",
				Example:     "Ich überlege mir vorher, wie ich am besten vorgehe.",
			},
			{
				Word:        "vorausschauend",
				Explanation: "Du erkennst, was als Nächstes passiert.",
				Example:     "Ich ahne die Spielzüge des Gegners und reagiere früh.",
			},
			{
				Word:        "übersicht",
				Explanation: "Du behältst den Überblick im Spiel.",
				Example:     "Ich sehe alle Mitspieler und weiss, wo Platz ist.",
			},
			{
				Word:        "lernfähig",
				Explanation: "Du nimmst Feedback auf und verbesserst dich.",
				Example:     "Ich setze Tipps vom Trainer schnell um.",
			},
			{
				Word:        "kreativ",
				Explanation: "Du findest unerwartete Lösungen im Spiel.",
				Example:     "Ich überrasche mit Tricks oder neuen Spielzügen.",
			},
			{
				Word:        "konzentriert",
				Explanation: "Du bleibst mental bei der Sache.",
				Example:     "Auch in hektischen Momenten behalte ich den Fokus.",
			},
			{
				Word:        "entscheidungsstark",
				Explanation: "Du triffst unter Druck die richtige Wahl.",
				Example:     "Ich weiss schnell, ob ich passen oder schiessen soll.",
			},
			{
				Word:        "teamfähig",
				Explanation: "Du arbeitest gut mit anderen zusammen.",
				Example:     "Ich unterstütze mein Team und stelle mich nicht in den Vordergrund.",
			},
			{
				Word:        "kommunikativ",
				Explanation: "Du sprichst dich im Team ab.",
				Example:     "Ich rufe Anweisungen oder ermutige meine Mitspieler.",
			},
			{
				Word:        "unterstützend",
				Explanation: "Du hilfst deinen Teammitgliedern.",
				Example:     "Ich springe ein, wenn jemand Hilfe braucht.",
			},
			{
				Word:        "verlässlich",
				Explanation: "Dein Team kann sich auf dich verlassen.",
				Example:     "Ich bin pünktlich beim Training und gebe immer mein Bestes.",
			},
			{
				Word:        "fair",
				Explanation: "Du spielst nach den Regeln und respektierst andere.",
				Example:     "Ich gratuliere dem Gegner und akzeptiere Schiedsrichterentscheide.",
			},
			{
				Word:        "motivierend",
				Explanation: "Du feuerst andere an und hebst die Stimmung.",
				Example:     "Ich ermutige mein Team, besonders wenn es schwierig wird.",
			},
			{
				Word:        "führungsstark",
				Explanation: "Du übernimmst Verantwortung und leitest andere an.",
				Example:     "Ich gebe Anweisungen und organisiere das Team.",
			},
			{
				Word:        "anpassungsfähig",
				Explanation: "Du passt dich verschiedenen Rollen und Situationen an.",
				Example:     "Ich spiele auf verschiedenen Positionen, wenn es das Team braucht.",
			},
			{
				Word:        "ehrgeizig",
				Explanation: "Du willst dich ständig verbessern und gewinnen.",
				Example:     "Ich trainiere extra, um besser zu werden.",
			},
			{
				Word:        "diszipliniert",
				Explanation: "Du hältst dich an Regeln und Trainingspläne.",
				Example:     "Ich trainiere regelmässig, auch wenn ich keine Lust habe.",
			},
			{
				Word:        "mental stark",
				Explanation: "Du bleibst auch unter Druck positiv und fokussiert.",
				Example:     "Auch bei Rückstand gebe ich nicht auf.",
			},
			{
				Word:        "selbstbewusst",
				Explanation: "Du glaubst an deine Fähigkeiten.",
				Example:     "Ich traue mir auch schwierige Aktionen zu.",
			},
			{
				Word:        "kämpferisch",
				Explanation: "Du gibst niemals auf und kämpfst bis zum Schluss.",
				Example:     "Ich hole auch verlorene Bälle und gebe Gas bis zum Ende.",
			},
			{
				Word:        "belastbar",
				Explanation: "Du kannst mit Druck und Niederlagen umgehen.",
				Example:     "Nach einer Niederlage stehe ich wieder auf und mache weiter.",
			},
			{
				Word:        "geduldig",
				Explanation: "Du wartest auf deine Chance und bleibst ruhig.",
				Example:     "Ich warte auf den richtigen Moment, statt überstürzt zu handeln.",
			},
			{
				Word:        "leidenschaftlich",
				Explanation: "Du liebst deinen Sport und brennst dafür.",
				Example:     "Sport ist für mich mehr als nur ein Hobby.",
			},
		},
	},
	{
		Name:        "Selbstkompetenz",
		Slug:        "selbstkompetenz",
		Description: "40 Adjektive zur Selbstkompetenz: Selbstbewusstsein, Selbstorganisation, Resilienz und persönliche Entwicklung",
		Adjectives: []seedAdjective{
			{
				Word:        "selbstbewusst",
				Explanation: "Du kennst deine Stärken und trittst sicher auf.",
				Example:     "Ich weiss, was ich gut kann, und zeige das auch.",
			},
			{
				Word:        "selbstreflektiert",
				Explanation: "Du denkst regelmässig über dich selbst nach.",
				Example:     "Ich überlege, warum ich so reagiert habe, und lerne daraus.",
			},
			{
				Word:        "selbstständig",
				Explanation: "Du kannst Aufgaben eigenständig erledigen.",
				Example:     "Ich brauche nicht ständig Anleitung und handle selbst.",
			},
			{
				Word:        "selbstdiszipliniert",
				Explanation: "Du kannst dich selbst motivieren und kontrollieren.",
				Example:     "Ich arbeite auch ohne Aufsicht konzentriert weiter.",
			},
			{
				Word:        "selbstkritisch",
				Explanation: "Du erkennst eigene Schwächen und Fehler.",
				Example:     "Ich sehe, wo ich mich verbessern muss, und arbeite daran.",
			},
			{
				Word:        "selbstorganisiert",
				Explanation: "Du planst und strukturierst deinen Alltag selbst.",
				Example:     "Ich erstelle To-do-Listen und halte meine Termine ein.",
			},
			{
				Word:        "selbstverantwortlich",
				Explanation: "Du übernimmst Verantwortung für dein Handeln.",
				Example:     "Ich stehe zu meinen Entscheidungen und ihren Konsequenzen.",
			},
			{
				Word:        "selbstwirksam",
				Explanation: "Du glaubst daran, Dinge beeinflussen zu können.",
				Example:     "Ich weiss, dass mein Einsatz einen Unterschied macht.",
			},
			{
				Word:        "resilient",
				Explanation: "Du erholst dich von Rückschlägen und bleibst stark.",
				Example:     "Nach einem Misserfolg stehe ich wieder auf und mache weiter.",
			},
			{
				Word:        "lernbereit",
				Explanation: "Du bist offen für neues Wissen und Erfahrungen.",
				Example:     "Ich sehe Fehler als Lernchance und will mich verbessern.",
			},
			{
				Word:        "zielorientiert",
				Explanation: "Du setzt dir Ziele und arbeitest darauf hin.",
				Example:     "Ich weiss, was ich erreichen will, und plane die Schritte.",
			},
			{
				Word:        "motiviert",
				Explanation: "Du hast Antrieb und Begeisterung für Aufgaben.",
				Example:     "Ich gehe Herausforderungen mit Energie und Freude an.",
			},
			{
				Word:        "ausdauernd",
				Explanation: "Du bleibst dran, auch wenn es schwierig wird.",
				Example:     "Ich gebe nicht auf, bis ich mein Ziel erreicht habe.",
			},
			{
				Word:        "geduldig",
				Explanation: "Du akzeptierst, dass manche Dinge Zeit brauchen.",
				Example:     "Ich erwarte keine sofortigen Ergebnisse und bleibe dran.",
			},
			{
				Word:        "entscheidungsfreudig",
				Explanation: "Du triffst Entscheidungen und stehst dazu.",
				Example:     "Ich wäge ab, entscheide mich und handle dann.",
			},
			{
				Word:        "mutig",
				Explanation: "Du traust dich, neue Wege zu gehen.",
				Example:     "Ich wage auch Dinge, bei denen ich unsicher bin.",
			},
			{
				Word:        "ehrlich",
				Explanation: "Du bist aufrichtig zu dir selbst und anderen.",
				Example:     "Ich mache mir nichts vor und sage die Wahrheit.",
			},
			{
				Word:        "authentisch",
				Explanation: "Du bleibst dir selbst treu und verstellt dich nicht.",
				Example:     "Ich zeige mich so, wie ich wirklich bin.",
			},
			{
				Word:        "stressresistent",
				Explanation: "Du bleibst auch unter Druck handlungsfähig.",
				Example:     "In hektischen Situationen bewahre ich einen kühlen Kopf.",
			},
			{
				Word:        "gelassen",
				Explanation: "Du bleibst ruhig, auch wenn es turbulent wird.",
				Example:     "Bei Problemen rege ich mich nicht sofort auf.",
			},
			{
				Word:        "optimistisch",
				Explanation: "Du siehst das Positive und glaubst an gute Ergebnisse.",
				Example:     "Ich gehe davon aus, dass es gut kommen wird.",
			},
			{
				Word:        "realistisch",
				Explanation: "Du schätzt dich und Situationen nüchtern ein.",
				Example:     "Ich weiss, was machbar ist, und setze mir erreichbare Ziele.",
			},
			{
				Word:        "flexibel",
				Explanation: "Du passt dich neuen Situationen an.",
				Example:     "Wenn sich etwas ändert, stelle ich mich darauf ein.",
			},
			{
				Word:        "neugierig",
				Explanation: "Du interessierst dich für Neues und willst lernen.",
				Example:     "Ich frage nach und will verstehen, wie Dinge funktionieren.",
			},
			{
				Word:        "kreativ",
				Explanation: "Du findest eigene Lösungen und Ideen.",
				Example:     "Ich denke um die Ecke und finde alternative Wege.",
			},
			{
				Word:        "analytisch",
				Explanation: "Du zerlegst Probleme und verstehst Zusammenhänge.",
				Example:     "Ich schaue genau hin und verstehe, was dahintersteckt.",
			},
			{
				Word:        "fokussiert",
				Explanation: "Du konzentrierst dich auf das Wesentliche.",
				Example:     "Ich lasse mich nicht ablenken und bleibe bei der Sache.",
			},
			{
				Word:        "strukturiert",
				Explanation: "Du gehst systematisch und ordentlich vor.",
				Example:     "Ich mache zuerst einen Plan, bevor ich loslege.",
			},
			{
				Word:        "eigeninitiativ",
				Explanation: "Du handelst aus eigenem Antrieb.",
				Example:     "Ich warte nicht auf Anweisungen, sondern ergreife selbst die Initiative.",
			},
			{
				Word:        "gewissenhaft",
				Explanation: "Du arbeitest sorgfältig und zuverlässig.",
				Example:     "Aufgaben erledige ich vollständig und gründlich.",
			},
			{
				Word:        "pflichtbewusst",
				Explanation: "Du nimmst deine Aufgaben und Pflichten ernst.",
				Example:     "Was ich übernehme, erledige ich auch.",
			},
			{
				Word:        "leistungsbereit",
				Explanation: "Du bist bereit, dich anzustrengen.",
				Example:     "Ich gebe mein Bestes und scheue keine Mühe.",
			},
			{
				Word:        "ambitioniert",
				Explanation: "Du hast hohe Ziele und willst etwas erreichen.",
				Example:     "Ich strebe nach mehr und gebe mich nicht mit wenig zufrieden.",
			},
			{
				Word:        "proaktiv",
				Explanation: "Du handelst vorausschauend und vorbeugend.",
				Example:     "Ich erkenne Probleme früh und handle, bevor es zu spät ist.",
			},
			{
				Word:        "besonnen",
				Explanation: "Du überlegst erst, bevor du handelst.",
				Example:     "Ich handle nicht impulsiv, sondern denke vorher nach.",
			},
			{
				Word:        "ausgeglichen",
				Explanation: "Du bist emotional stabil und im Gleichgewicht.",
				Example:     "Ich lasse mich nicht so schnell aus der Ruhe bringen.",
			},
			{
				Word:        "anpassungsfähig",
				Explanation: "Du kommst mit Veränderungen gut zurecht.",
				Example:     "Neue Situationen machen mir keine Angst.",
			},
			{
				Word:        "unabhängig",
				Explanation: "Du bildest dir eigene Meinungen und handelst selbst.",
				Example:     "Ich lasse mich nicht von anderen unter Druck setzen.",
			},
			{
				Word:        "belastbar",
				Explanation: "Du hältst auch in schwierigen Phasen durch.",
				Example:     "Auch bei viel Arbeit behalte ich den Überblick.",
			},
			{
				Word:        "bewusst",
				Explanation: "Du achtest auf deine Gedanken, Gefühle und Handlungen.",
				Example:     "Ich nehme wahr, wie ich mich fühle und warum.",
			},
		},
	},
	{
		Name:        "Sozialkompetenz",
		Slug:        "sozialkompetenz",
		Description: "40 Adjektive zur Sozialkompetenz: Teamarbeit, Kommunikation, Empathie und zwischenmenschliche Fähigkeiten",
		Adjectives: []seedAdjective{
			{
				Word:        "teamfähig",
				Explanation: "Du arbeitest gut mit anderen zusammen.",
				Example:     "In der Gruppe übernehme ich meinen Teil und helfe anderen.",
			},
			{
				Word:        "kommunikativ",
				Explanation: "Du drückst dich klar aus und hörst zu.",
				Example:     "Ich kann meine Gedanken verständlich erklären.",
			},
			{
				Word:        "empathisch",
				Explanation: "Du verstehst und teilst die Gefühle anderer.",
				Example:     "Ich merke, wenn es jemandem nicht gut geht, und frage nach.",
			},
			{
				Word:        "hilfsbereit",
				Explanation: "Du unterstützt andere gerne.",
				Example:     "Ich helfe, wenn jemand Schwierigkeiten hat.",
			},
			{
				Word:        "respektvoll",
				Explanation: "Du behandelst andere mit Achtung und Würde.",
				Example:     "Ich lasse andere ausreden und werte niemanden ab.",
			},
			{
				Word:        "freundlich",
				Explanation: "Du gehst nett und herzlich mit anderen um.",
				Example:     "Ich grüsse und lächle, auch Fremde.",
			},
			{
				Word:        "tolerant",
				Explanation: "Du akzeptierst andere, auch wenn sie anders sind.",
				Example:     "Ich respektiere verschiedene Meinungen und Lebensweisen.",
			},
			{
				Word:        "fair",
				Explanation: "Du behandelst alle gleich und gerecht.",
				Example:     "Ich halte mich an Abmachungen und bevorzuge niemanden.",
			},
			{
				Word:        "kooperativ",
				Explanation: "Du arbeitest gerne mit anderen zusammen.",
				Example:     "Ich suche nach Lösungen, die für alle passen.",
			},
			{
				Word:        "konfliktfähig",
				Explanation: "Du kannst Konflikte sachlich ansprechen und lösen.",
				Example:     "Bei Streit spreche ich das Problem ruhig an.",
			},
			{
				Word:        "diplomatisch",
				Explanation: "Du vermittelst geschickt zwischen verschiedenen Seiten.",
				Example:     "Ich finde Kompromisse und bringe Leute zusammen.",
			},
			{
				Word:        "kompromissbereit",
				Explanation: "Du bist bereit, Zugeständnisse zu machen.",
				Example:     "Ich bestehe nicht immer auf meiner Meinung.",
			},
			{
				Word:        "verlässlich",
				Explanation: "Man kann sich auf dich verlassen.",
				Example:     "Was ich verspreche, halte ich auch ein.",
			},
			{
				Word:        "loyal",
				Explanation: "Du stehst zu deinen Freunden und deinem Team.",
				Example:     "Ich halte zu meinen Leuten, auch in schwierigen Zeiten.",
			},
			{
				Word:        "vertrauenswürdig",
				Explanation: "Man kann dir Geheimnisse anvertrauen.",
				Example:     "Was mir jemand im Vertrauen erzählt, behalte ich für mich.",
			},
			{
				Word:        "aufmerksam",
				Explanation: "Du bemerkst, was andere brauchen oder fühlen.",
				Example:     "Ich sehe, wenn jemand Hilfe braucht oder schlecht drauf ist.",
			},
			{
				Word:        "wertschätzend",
				Explanation: "Du zeigst anderen, dass du sie schätzt.",
				Example:     "Ich sage Danke und mache Komplimente, wenn sie verdient sind.",
			},
			{
				Word:        "offen",
				Explanation: "Du bist zugänglich und interessierst dich für andere.",
				Example:     "Ich gehe auf neue Leute zu und stelle Fragen.",
			},
			{
				Word:        "höflich",
				Explanation: "Du verhältst dich anständig und respektvoll.",
				Example:     "Ich sage 'bitte' und 'danke' und halte Türen auf.",
			},
			{
				Word:        "geduldig",
				Explanation: "Du nimmst dir Zeit für andere.",
				Example:     "Ich erkläre etwas mehrmals, wenn jemand es nicht versteht.",
			},
			{
				Word:        "verständnisvoll",
				Explanation: "Du versuchst, andere zu verstehen.",
				Example:     "Bevor ich urteile, frage ich nach den Gründen.",
			},
			{
				Word:        "rücksichtsvoll",
				Explanation: "Du denkst an die Bedürfnisse anderer.",
				Example:     "Ich bin leise, wenn andere arbeiten oder schlafen.",
			},
			{
				Word:        "einfühlsam",
				Explanation: "Du gehst sensibel mit den Gefühlen anderer um.",
				Example:     "Ich tröste jemanden, der traurig ist, und höre zu.",
			},
			{
				Word:        "kontaktfreudig",
				Explanation: "Du gehst gerne auf Menschen zu.",
				Example:     "Ich komme leicht mit neuen Leuten ins Gespräch.",
			},
			{
				Word:        "integrativ",
				Explanation: "Du beziehst andere mit ein und schliesst niemanden aus.",
				Example:     "Ich lade auch Aussenseiter ein mitzumachen.",
			},
			{
				Word:        "motivierend",
				Explanation: "Du ermutigst und begeisterst andere.",
				Example:     "Ich feuere andere an und mache ihnen Mut.",
			},
			{
				Word:        "inspirierend",
				Explanation: "Du gibst anderen Ideen und Anstösse.",
				Example:     "Meine Ideen regen andere zum Nachdenken an.",
			},
			{
				Word:        "führungsstark",
				Explanation: "Du kannst eine Gruppe leiten und organisieren.",
				Example:     "Ich übernehme die Leitung und koordiniere das Team.",
			},
			{
				Word:        "verantwortungsbewusst",
				Explanation: "Du übernimmst Verantwortung für die Gruppe.",
				Example:     "Ich achte darauf, dass alle mitkommen und niemand zurückbleibt.",
			},
			{
				Word:        "kritikfähig",
				Explanation: "Du gibst und nimmst Kritik konstruktiv.",
				Example:     "Ich sage ehrlich meine Meinung, ohne zu verletzen.",
			},
			{
				Word:        "versöhnlich",
				Explanation: "Du kannst nach Streit wieder aufeinander zugehen.",
				Example:     "Nach einem Konflikt biete ich an, die Sache zu klären.",
			},
			{
				Word:        "dankbar",
				Explanation: "Du erkennst an, was andere für dich tun.",
				Example:     "Ich sage Danke und zeige, dass ich Hilfe schätze.",
			},
			{
				Word:        "grosszügig",
				Explanation: "Du teilst gerne und gibst ohne zu zögern.",
				Example:     "Ich teile mein Essen oder helfe ohne Gegenleistung.",
			},
			{
				Word:        "bescheiden",
				Explanation: "Du stellst dich nicht in den Vordergrund.",
				Example:     "Ich prahle nicht mit meinen Erfolgen.",
			},
			{
				Word:        "authentisch",
				Explanation: "Du bist echt und verstellt dich nicht in Gruppen.",
				Example:     "Ich bleibe mir selbst treu, auch wenn andere anders denken.",
			},
			{
				Word:        "zugänglich",
				Explanation: "Andere können leicht mit dir ins Gespräch kommen.",
				Example:     "Ich wirke nicht abweisend und höre zu, wenn jemand kommt.",
			},
			{
				Word:        "vermittelnd",
				Explanation: "Du hilfst, Missverständnisse zu klären.",
				Example:     "Bei Streit versuche ich, beide Seiten zu verstehen.",
			},
			{
				Word:        "unterstützend",
				Explanation: "Du stärkst anderen den Rücken.",
				Example:     "Ich helfe anderen, ihre Ziele zu erreichen.",
			},
			{
				Word:        "verbindend",
				Explanation: "Du bringst Menschen zusammen.",
				Example:     "Ich stelle Leute vor, die sich noch nicht kennen.",
			},
			{
				Word:        "einbeziehend",
				Explanation: "Du achtest darauf, dass alle mitmachen können.",
				Example:     "Bei Gruppenarbeiten frage ich auch die Stillen nach ihrer Meinung.",
			},
		},
	},
}
