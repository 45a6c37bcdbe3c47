/*******************************************************************************
*
* Copyright 2021-2026 Dave Pearson <davep@davep.org>
*
* This file is part of ngdb.
*
* ngdb is free software: you can redistribute it and/or modify it under the
* terms of the GNU General Public License as published by the Free Software
* Foundation, either version 3 of the License, or (at your option) any later
* version.
*
* ngdb is distributed in the hope that it will be useful, but WITHOUT ANY
* WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR
* A PARTICULAR PURPOSE. See the GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License along with
* ngdb. If not, see <http://www.gnu.org/licenses/>.
*
*******************************************************************************/

package markup

//dosMap translates the DOS/CP437 code page's upper control and graphics
//range into its Unicode glyph. Bytes outside this table (the printable
//ASCII range, and 247) pass through unchanged.
var dosMap = map[byte]rune{
	0:  ' ',
	1:  '☺',
	2:  '☻',
	3:  '♥',
	4:  '♦',
	5:  '♣',
	6:  '♠',
	7:  '•',
	8:  '◛',
	9:  '○',
	10: '◙',
	11: '♂',
	12: '♀',
	13: '♪',
	14: '♫',
	15: '☼',
	16: '►',
	17: '◄',
	18: '↕',
	19: '‼',
	20: '¶',
	21: '§',
	22: '▬',
	23: '↨',
	24: '↑',
	25: '↓',
	26: '→',
	27: '←',
	28: '∟',
	29: '↔',
	30: '▲',
	31: '▼',

	127: '⌂',
	128: 'Ç',
	129: 'ü',
	130: 'é',
	131: 'â',
	132: 'ä',
	133: 'à',
	134: 'å',
	135: 'ç',
	136: 'ê',
	137: 'ë',
	138: 'è',
	139: 'ï',
	140: 'î',
	141: 'ì',
	142: 'Ä',
	143: 'Å',
	144: 'É',
	145: 'æ',
	146: 'Æ',
	147: 'ô',
	148: 'ö',
	149: 'ò',
	150: 'û',
	151: 'ù',
	152: 'ÿ',
	153: 'Ö',
	154: 'Ü',
	155: '¢',
	156: '£',
	157: '¥',
	158: '₧',
	159: 'ƒ',
	160: 'á',
	161: 'í',
	162: 'ó',
	163: 'ú',
	164: 'ñ',
	165: 'Ñ',
	166: 'ª',
	167: 'º',
	168: '¿',
	169: '⌙',
	170: '¬',
	171: '½',
	172: '¼',
	173: '¡',
	174: '«',
	175: '»',
	176: '░',
	177: '▒',
	178: '▓',
	179: '│',
	180: '┤',
	181: '╡',
	182: '╢',
	183: '╖',
	184: '╕',
	185: '╣',
	186: '║',
	187: '╗',
	188: '╝',
	189: '╜',
	190: '╛',
	191: '┐',
	192: '└',
	193: '┴',
	194: '┬',
	195: '├',
	196: '─',
	197: '┼',
	198: '╞',
	199: '╟',
	200: '╚',
	201: '╔',
	202: '╩',
	203: '╦',
	204: '╠',
	205: '═',
	206: '╬',
	207: '╧',
	208: '╨',
	209: '╤',
	210: '╥',
	211: '╙',
	212: '╘',
	213: '╒',
	214: '╓',
	215: '╫',
	216: '╪',
	217: '┛',
	218: '┌',
	219: '█',
	220: '▄',
	221: '▌',
	222: '▐',
	223: '▀',
	224: 'α',
	225: 'ß',
	226: 'Γ',
	227: 'π',
	228: 'Σ',
	229: 'σ',
	230: 'µ',
	231: 'τ',
	232: 'Φ',
	233: 'Λ',
	234: 'Ω',
	235: 'δ',
	236: '∞',
	237: 'φ',
	238: 'ε',
	239: '∩',
	240: '≡',
	241: '±',
	242: '≥',
	243: '≤',
	244: '⌠',
	245: '⌡',
	246: '÷',
	248: '°',
	249: '∙',
	250: '·',
	251: '√',
	252: 'ⁿ',
	253: '²',
	254: '■',
	255: '\u00A0',
}

//dosify translates s, which holds one rune per original DOS byte value
//(the way reader.readStr produces it), into its DOS/CP437-aware
//rendering. Runes outside the table, notably plain printable ASCII, are
//passed through unchanged.
func dosify(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= 0 && r < 256 {
			if mapped, ok := dosMap[byte(r)]; ok {
				out = append(out, mapped)
				continue
			}
		}
		out = append(out, r)
	}
	return string(out)
}
