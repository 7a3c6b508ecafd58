package meow

/* Catalog entries not raised by the current pipeline but kept for
   forward-compatibility of the codes:

   E002 (meow before the end; the parser stops at the first meow)
   E102 (unbalanced parenthesis; reported as E104 today)
   E103 (strict indentation; the lexer realigns instead, see the lexer)
   E300/E301 (condition shape; caught structurally by the grammar)
   E999 (error-budget overflow; the pipeline halts on first failure)
*/

// errorCatalog maps every known error code to its immutable definition.
// LookupDefinition is the only reader; entries are never mutated.
var errorCatalog = map[string]ErrorDefinition{
	"E000": {
		Code:        "E000",
		Name:        "ScriptSansMiaou",
		MessageTech: "Le script doit commencer par 'miaou'.",
		MessageMeow: "😾 Le chat refuse d'entrer sans un \"miaou\" au début.",
		Severity:    SeverityForte,
		Mood:        "😾 En colère, refuse d'entrer.",
		Suggestion:  "✔ Ajoute 'miaou' au tout début du fichier",
		Example:     "  miaou\n  ecrire \"Hello!\"\n  meow",
	},
	"E001": {
		Code:        "E001",
		Name:        "ScriptSansMeow",
		MessageTech: "Le script doit se terminer par 'meow'.",
		MessageMeow: "💤 Le chat s'est endormi avant le \"meow\" final.",
		Severity:    SeverityForte,
		Mood:        "💤 Endormi, perdu dans ses rêves.",
		Suggestion:  "✔ Ajoute 'meow' à la toute fin du fichier",
		Example:     "  miaou\n  ecrire \"Hello!\"\n  meow",
	},
	"E002": {
		Code:        "E002",
		Name:        "MeowPremature",
		MessageTech: "Le mot-clé 'meow' apparaît avant la fin du script.",
		MessageMeow: "🪟 Le chat est sorti trop tôt par la fenêtre.",
		Severity:    SeverityMoyenne,
		Mood:        "😼 Pressé, déjà dehors.",
		Suggestion:  "✔ Place 'meow' uniquement à la fin du script",
		Example:     "  miaou\n  # ton code ici\n  meow",
	},
	"E004": {
		Code:        "E004",
		Name:        "FichierVide",
		MessageTech: "Le fichier est vide.",
		MessageMeow: "😿 Le carton est vide.",
		Severity:    SeverityMoyenne,
		Mood:        "😿 Déçu et triste.",
		Suggestion:  "✔ Ajoute du code dans le fichier",
	},
	"E100": {
		Code:        "E100",
		Name:        "InstructionInconnue",
		MessageTech: "Instruction ou mot-clé non reconnu.",
		MessageMeow: "😿 Le chat ne comprend pas ce mot.",
		Severity:    SeverityMoyenne,
		Mood:        "😿 Perplexe, tête penchée.",
		Suggestion:  "✔ Vérifie l'orthographe de l'instruction\n✔ Consulte la liste des mots-clés valides",
	},
	"E101": {
		Code:        "E101",
		Name:        "GuillemetManquant",
		MessageTech: "Guillemet de fermeture manquant pour une chaîne de caractères.",
		MessageMeow: "🧶 La pelote de laine n'est pas fermée (guillemet manquant).",
		Severity:    SeverityMoyenne,
		Mood:        "🧶 Distrait, joue avec la pelote.",
		Suggestion:  "✔ Ajoute un guillemet \" à la fin de la chaîne",
		Example:     "  texte = \"Bonjour le chat\"",
	},
	"E102": {
		Code:        "E102",
		Name:        "ParentheseManquante",
		MessageTech: "Parenthèse manquante dans une expression.",
		MessageMeow: "🐈 Une patte dépasse. Parenthèse manquante.",
		Severity:    SeverityMoyenne,
		Mood:        "🐈 Inconfortable, une patte en l'air.",
		Suggestion:  "✔ Vérifie que chaque '(' a son ')'",
		Example:     "  resultat = (3 + 5) * 2",
	},
	"E103": {
		Code:        "E103",
		Name:        "IndentationFautive",
		MessageTech: "Indentation incorrecte détectée.",
		MessageMeow: "😾 Le chat n'aime pas les lignes mal alignées.",
		Severity:    SeverityMoyenne,
		Mood:        "😾 Agacé par le désordre.",
		Suggestion:  "✔ Utilise des espaces cohérents pour l'indentation\n✔ Évite de mélanger espaces et tabulations",
		Example:     "  si age > 10 alors:\n    ecrire \"OK\"  # 2 ou 4 espaces d'indentation",
	},
	"E104": {
		Code:        "E104",
		Name:        "MotCleManquant",
		MessageTech: "Mot-clé attendu manquant.",
		MessageMeow: "🧐 Il manque un mot magique.",
		Severity:    SeverityMoyenne,
		Mood:        "🧐 Attend quelque chose.",
		Suggestion:  "✔ Vérifie la syntaxe complète de l'instruction",
	},
	"E200": {
		Code:        "E200",
		Name:        "VariableInexistante",
		MessageTech: "Variable '{var_name}' non définie.",
		MessageMeow: "🐾 Ce chat '{var_name}' n'existe pas dans la maison.",
		Severity:    SeverityMoyenne,
		Mood:        "🐾 Cherche partout, ne trouve rien.",
		Suggestion:  "✔ Vérifie l'orthographe de la variable\n✔ Définis la variable avant de l'utiliser",
		Example:     "  {var_name} = 42\n  ecrire {var_name}",
	},
	"E202": {
		Code:        "E202",
		Name:        "TypeIncompatible",
		MessageTech: "Opération impossible entre types incompatibles : {type1} et {type2}.",
		MessageMeow: "🐟 Mauvaise gamelle pour ce repas. Types {type1} et {type2} incompatibles.",
		Severity:    SeverityMoyenne,
		Mood:        "😿 Dégoûté par la gamelle.",
		Suggestion:  "✔ Vérifie les types de tes variables\n✔ Convertis si nécessaire",
	},
	"E300": {
		Code:        "E300",
		Name:        "ConditionInvalide",
		MessageTech: "La condition n'est pas valide ou est mal formée.",
		MessageMeow: "🤨 Cette condition n'a aucun sens.",
		Severity:    SeverityMoyenne,
		Mood:        "🤨 Sourcil levé, dubitatif.",
		Suggestion:  "✔ Vérifie la syntaxe de la condition\n✔ Utilise des opérateurs valides : =, !=, <, >, <=, >=, et, ou",
	},
	"E301": {
		Code:        "E301",
		Name:        "SinonSansSi",
		MessageTech: "'sinon' ou 'sinon si' sans 'si' correspondant.",
		MessageMeow: "😾 Le chat répond \"sinon\" sans qu'on lui ait posé de question.",
		Severity:    SeverityMoyenne,
		Mood:        "😾 Confus et agacé.",
		Suggestion:  "✔ Place 'sinon' après un bloc 'si'",
	},
	"E500": {
		Code:        "E500",
		Name:        "DivisionParZero",
		MessageTech: "Division par zéro impossible.",
		MessageMeow: "🚫 Partager des croquettes entre zéro chat est strictement interdit.",
		Severity:    SeverityMoyenne,
		Mood:        "😾 Agacé, oreilles en arrière, queue en fouet.",
		Suggestion:  "✔ Vérifie que le diviseur est différent de 0\n✔ Ajoute une condition avant le calcul",
		Example:     "  si nombre != 0 alors:\n    ecrire 10 / nombre\n  sinon:\n    ecrire \"Même le chat ne peut pas faire ça.\"",
	},
	"E600": {
		Code:        "E600",
		Name:        "FonctionInconnue",
		MessageTech: "La fonction '{func_name}' n'existe pas.",
		MessageMeow: "😿 Ce tour félin '{func_name}' n'existe pas.",
		Severity:    SeverityMoyenne,
		Mood:        "😿 Désolé, ne connaît pas ce tour.",
		Suggestion:  "✔ Vérifie le nom de la fonction\n✔ Définis la fonction avant de l'appeler",
	},
	"E601": {
		Code:        "E601",
		Name:        "ArgumentsInvalides",
		MessageTech: "Nombre d'arguments incorrect : attendu {expected}, reçu {received}.",
		MessageMeow: "🐾 Le chat attend {expected} caresse(s), pas {received}.",
		Severity:    SeverityMoyenne,
		Mood:        "🐾 Insatisfait du nombre de caresses.",
		Suggestion:  "✔ Vérifie le nombre d'arguments passés à la fonction",
	},
	"E700": {
		Code:        "E700",
		Name:        "IndexHorsLimite",
		MessageTech: "Index {index} hors limites pour liste de taille {size}.",
		MessageMeow: "🐈 Tu cherches un chat qui n'est pas dans la portée (index {index}).",
		Severity:    SeverityMoyenne,
		Mood:        "🐈 Cherche dans le vide.",
		Suggestion:  "✔ Vérifie que l'index est entre 0 et {size_minus_one}",
		Example:     "  # Pour une liste de taille {size}, utilise index 0 à {size_minus_one}",
	},
	"E800": {
		Code:        "E800",
		Name:        "TempsNegatif",
		MessageTech: "La durée d'attente ne peut pas être négative : {duration}.",
		MessageMeow: "🕰️ Le chat ne peut pas dormir dans le passé.",
		Severity:    SeverityMoyenne,
		Mood:        "🕰️ Confus par le temps.",
		Suggestion:  "✔ Utilise une durée positive pour 'attendre'",
	},
	"E900": {
		Code:        "E900",
		Name:        "FichierIntrouvable",
		MessageTech: "Le fichier '{filename}' est introuvable.",
		MessageMeow: "😾 Le chat ne retrouve pas son script '{filename}'.",
		Severity:    SeverityForte,
		Mood:        "😾 Énervé, cherche partout.",
		Suggestion:  "✔ Vérifie le chemin du fichier\n✔ Vérifie que le fichier existe",
	},
	"E902": {
		Code:        "E902",
		Name:        "CrashInterpreteur",
		MessageTech: "Erreur interne de l'interpréteur : {reason}.",
		MessageMeow: "💥 Le chat a renversé l'interpréteur.",
		Severity:    SeverityForte,
		Mood:        "💥 Catastrophe totale.",
		Suggestion:  "✔ Ceci est un bug de MeowLang\n✔ Rapporte ce problème avec ton code",
	},
	"E999": {
		Code:        "E999",
		Name:        "ChatAssisSurClavier",
		MessageTech: "Trop d'erreurs détectées. Arrêt du parsing.",
		MessageMeow: "🐾 Le chat s'est assis sur le clavier. Redémarrage conseillé.",
		Severity:    SeverityForte,
		Mood:        "🐾 Confortablement installé sur les touches.",
		Suggestion:  "✔ Corrige les erreurs précédentes\n✔ Prends une pause café avec le chat",
	},
}

// crashDefinition is what unknown codes fold to. It differs from the E902
// catalog entry in that the {reason} placeholder is dropped (there is no
// reason to interpolate when the code itself was bogus).
var crashDefinition = ErrorDefinition{
	Code:        "E902",
	Name:        "CrashInterpreteur",
	MessageTech: "Erreur interne de l'interpréteur.",
	MessageMeow: "💥 Le chat a renversé l'interpréteur.",
	Severity:    SeverityForte,
	Mood:        "💥 Catastrophe totale.",
	Suggestion:  "✔ Ceci est un bug de MeowLang",
}

// LookupDefinition returns the catalog entry for the given code. Unknown
// codes fold to the internal-crash definition.
func LookupDefinition(code string) ErrorDefinition {
	if def, ok := errorCatalog[code]; ok {
		return def
	}
	return crashDefinition
}
