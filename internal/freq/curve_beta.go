package freq

// CurveBeta is the frequency table used by the beta driver version,
// with coarser pitch-bend granularity (16 steps per semitone vs the
// standard curve's 32) and a much larger note range.
// Transcribed verbatim from original_source/src/i_oplmusic.c.
var CurveBeta = [...]uint16{
	0x0159, 0x0159, 0x0159, 0x0159, 0x0159, 0x0159, 0x0159, 0x0159,
	0x0159, 0x0159, 0x0159, 0x0159, 0x0159, 0x0159, 0x0159, 0x0159,
	0x015a, 0x015b, 0x015c, 0x015e, 0x015f, 0x0160, 0x0161, 0x0163,
	0x0164, 0x0165, 0x0167, 0x0168, 0x0169, 0x016b, 0x016c, 0x016d,
	0x016e, 0x0170, 0x0171, 0x0172, 0x0174, 0x0175, 0x0176, 0x0178,
	0x0179, 0x017b, 0x017c, 0x017d, 0x017f, 0x0180, 0x0181, 0x0183,
	0x0184, 0x0186, 0x0187, 0x0188, 0x018a, 0x018b, 0x018d, 0x018e,
	0x0190, 0x0191, 0x0193, 0x0194, 0x0195, 0x0197, 0x0198, 0x019a,
	0x019b, 0x019d, 0x019e, 0x01a0, 0x01a1, 0x01a3, 0x01a4, 0x01a6,
	0x01a7, 0x01a9, 0x01ab, 0x01ac, 0x01ae, 0x01af, 0x01b1, 0x01b2,
	0x01b4, 0x01b5, 0x01b7, 0x01b9, 0x01ba, 0x01bc, 0x01bd, 0x01bf,
	0x01c1, 0x01c2, 0x01c4, 0x01c6, 0x01c7, 0x01c9, 0x01ca, 0x01cc,
	0x01ce, 0x01cf, 0x01d1, 0x01d3, 0x01d4, 0x01d6, 0x01d8, 0x01da,
	0x01db, 0x01dd, 0x01df, 0x01e0, 0x01e2, 0x01e4, 0x01e6, 0x01e7,
	0x01e9, 0x01eb, 0x01ed, 0x01ef, 0x01f0, 0x01f2, 0x01f4, 0x01f6,
	0x01f8, 0x01f9, 0x01fb, 0x01fd, 0x01ff, 0x0201, 0x0203, 0x0205,
	0x0207, 0x0208, 0x020a, 0x020c, 0x020e, 0x0210, 0x0212, 0x0214,
	0x0216, 0x0218, 0x021a, 0x021c, 0x021e, 0x0220, 0x0221, 0x0223,
	0x0225, 0x0227, 0x0229, 0x022b, 0x022d, 0x022f, 0x0231, 0x0234,
	0x0236, 0x0238, 0x023a, 0x023c, 0x023e, 0x0240, 0x0242, 0x0244,
	0x0246, 0x0248, 0x024a, 0x024c, 0x024f, 0x0251, 0x0253, 0x0255,
	0x0257, 0x0259, 0x025c, 0x025e, 0x0260, 0x0262, 0x0264, 0x0267,
	0x0269, 0x026b, 0x026d, 0x026f, 0x0272, 0x0274, 0x0276, 0x0279,
	0x027b, 0x027d, 0x027f, 0x0282, 0x0284, 0x0286, 0x0289, 0x028b,
	0x028d, 0x0290, 0x0292, 0x0295, 0x0297, 0x0299, 0x029c, 0x029e,
	0x02a1, 0x02a3, 0x02a5, 0x02a8, 0x02aa, 0x02ad, 0x02af, 0x02b2,
	0x02b4, 0x02b7, 0x02b9, 0x02bc, 0x02be, 0x02c1, 0x02c3, 0x02c6,
	0x02c9, 0x02cb, 0x02ce, 0x02d0, 0x02d3, 0x02d6, 0x02d8, 0x02db,
	0x02dd, 0x02e0, 0x02e3, 0x02e5, 0x02e8, 0x02eb, 0x02ed, 0x02f0,
	0x02f3, 0x02f6, 0x02f8, 0x02fb, 0x02fe, 0x0301, 0x0303, 0x0306,
	0x0309, 0x030c, 0x030f, 0x0311, 0x0314, 0x0317, 0x031a, 0x031d,
	0x0320, 0x0323, 0x0326, 0x0329, 0x032b, 0x032e, 0x0331, 0x0334,
	0x0337, 0x033a, 0x033d, 0x0340, 0x0343, 0x0346, 0x0349, 0x034c,
	0x034f, 0x0352, 0x0356, 0x0359, 0x035c, 0x035f, 0x0362, 0x0365,
	0x0368, 0x036b, 0x036f, 0x0372, 0x0375, 0x0378, 0x037b, 0x037f,
	0x0382, 0x0385, 0x0388, 0x038c, 0x038f, 0x0392, 0x0395, 0x0399,
	0x039c, 0x039f, 0x03a3, 0x03a6, 0x03a9, 0x03ad, 0x03b0, 0x03b4,
	0x03b7, 0x03bb, 0x03be, 0x03c1, 0x03c5, 0x03c8, 0x03cc, 0x03cf,
	0x03d3, 0x03d7, 0x03da, 0x03de, 0x03e1, 0x03e5, 0x03e8, 0x03ec,
	0x03f0, 0x03f3, 0x03f7, 0x03fb, 0x03fe, 0x0601, 0x0603, 0x0605,
	0x0607, 0x0608, 0x060a, 0x060c, 0x060e, 0x0610, 0x0612, 0x0614,
	0x0616, 0x0618, 0x061a, 0x061c, 0x061e, 0x0620, 0x0621, 0x0623,
	0x0625, 0x0627, 0x0629, 0x062b, 0x062d, 0x062f, 0x0631, 0x0634,
	0x0636, 0x0638, 0x063a, 0x063c, 0x063e, 0x0640, 0x0642, 0x0644,
	0x0646, 0x0648, 0x064a, 0x064c, 0x064f, 0x0651, 0x0653, 0x0655,
	0x0657, 0x0659, 0x065c, 0x065e, 0x0660, 0x0662, 0x0664, 0x0667,
	0x0669, 0x066b, 0x066d, 0x066f, 0x0672, 0x0674, 0x0676, 0x0679,
	0x067b, 0x067d, 0x067f, 0x0682, 0x0684, 0x0686, 0x0689, 0x068b,
	0x068d, 0x0690, 0x0692, 0x0695, 0x0697, 0x0699, 0x069c, 0x069e,
	0x06a1, 0x06a3, 0x06a5, 0x06a8, 0x06aa, 0x06ad, 0x06af, 0x06b2,
	0x06b4, 0x06b7, 0x06b9, 0x06bc, 0x06be, 0x06c1, 0x06c3, 0x06c6,
	0x06c9, 0x06cb, 0x06ce, 0x06d0, 0x06d3, 0x06d6, 0x06d8, 0x06db,
	0x06dd, 0x06e0, 0x06e3, 0x06e5, 0x06e8, 0x06eb, 0x06ed, 0x06f0,
	0x06f3, 0x06f6, 0x06f8, 0x06fb, 0x06fe, 0x0701, 0x0703, 0x0706,
	0x0709, 0x070c, 0x070f, 0x0711, 0x0714, 0x0717, 0x071a, 0x071d,
	0x0720, 0x0723, 0x0726, 0x0729, 0x072b, 0x072e, 0x0731, 0x0734,
	0x0737, 0x073a, 0x073d, 0x0740, 0x0743, 0x0746, 0x0749, 0x074c,
	0x074f, 0x0752, 0x0756, 0x0759, 0x075c, 0x075f, 0x0762, 0x0765,
	0x0768, 0x076b, 0x076f, 0x0772, 0x0775, 0x0778, 0x077b, 0x077f,
	0x0782, 0x0785, 0x0788, 0x078c, 0x078f, 0x0792, 0x0795, 0x0799,
	0x079c, 0x079f, 0x07a3, 0x07a6, 0x07a9, 0x07ad, 0x07b0, 0x07b4,
	0x07b7, 0x07bb, 0x07be, 0x07c1, 0x07c5, 0x07c8, 0x07cc, 0x07cf,
	0x07d3, 0x07d7, 0x07da, 0x07de, 0x07e1, 0x07e5, 0x07e8, 0x07ec,
	0x07f0, 0x07f3, 0x07f7, 0x07fb, 0x07fe, 0x0a01, 0x0a03, 0x0a05,
	0x0a07, 0x0a08, 0x0a0a, 0x0a0c, 0x0a0e, 0x0a10, 0x0a12, 0x0a14,
	0x0a16, 0x0a18, 0x0a1a, 0x0a1c, 0x0a1e, 0x0a20, 0x0a21, 0x0a23,
	0x0a25, 0x0a27, 0x0a29, 0x0a2b, 0x0a2d, 0x0a2f, 0x0a31, 0x0a34,
	0x0a36, 0x0a38, 0x0a3a, 0x0a3c, 0x0a3e, 0x0a40, 0x0a42, 0x0a44,
	0x0a46, 0x0a48, 0x0a4a, 0x0a4c, 0x0a4f, 0x0a51, 0x0a53, 0x0a55,
	0x0a57, 0x0a59, 0x0a5c, 0x0a5e, 0x0a60, 0x0a62, 0x0a64, 0x0a67,
	0x0a69, 0x0a6b, 0x0a6d, 0x0a6f, 0x0a72, 0x0a74, 0x0a76, 0x0a79,
	0x0a7b, 0x0a7d, 0x0a7f, 0x0a82, 0x0a84, 0x0a86, 0x0a89, 0x0a8b,
	0x0a8d, 0x0a90, 0x0a92, 0x0a95, 0x0a97, 0x0a99, 0x0a9c, 0x0a9e,
	0x0aa1, 0x0aa3, 0x0aa5, 0x0aa8, 0x0aaa, 0x0aad, 0x0aaf, 0x0ab2,
	0x0ab4, 0x0ab7, 0x0ab9, 0x0abc, 0x0abe, 0x0ac1, 0x0ac3, 0x0ac6,
	0x0ac9, 0x0acb, 0x0ace, 0x0ad0, 0x0ad3, 0x0ad6, 0x0ad8, 0x0adb,
	0x0add, 0x0ae0, 0x0ae3, 0x0ae5, 0x0ae8, 0x0aeb, 0x0aed, 0x0af0,
	0x0af3, 0x0af6, 0x0af8, 0x0afb, 0x0afe, 0x0b01, 0x0b03, 0x0b06,
	0x0b09, 0x0b0c, 0x0b0f, 0x0b11, 0x0b14, 0x0b17, 0x0b1a, 0x0b1d,
	0x0b20, 0x0b23, 0x0b26, 0x0b29, 0x0b2b, 0x0b2e, 0x0b31, 0x0b34,
	0x0b37, 0x0b3a, 0x0b3d, 0x0b40, 0x0b43, 0x0b46, 0x0b49, 0x0b4c,
	0x0b4f, 0x0b52, 0x0b56, 0x0b59, 0x0b5c, 0x0b5f, 0x0b62, 0x0b65,
	0x0b68, 0x0b6b, 0x0b6f, 0x0b72, 0x0b75, 0x0b78, 0x0b7b, 0x0b7f,
	0x0b82, 0x0b85, 0x0b88, 0x0b8c, 0x0b8f, 0x0b92, 0x0b95, 0x0b99,
	0x0b9c, 0x0b9f, 0x0ba3, 0x0ba6, 0x0ba9, 0x0bad, 0x0bb0, 0x0bb4,
	0x0bb7, 0x0bbb, 0x0bbe, 0x0bc1, 0x0bc5, 0x0bc8, 0x0bcc, 0x0bcf,
	0x0bd3, 0x0bd7, 0x0bda, 0x0bde, 0x0be1, 0x0be5, 0x0be8, 0x0bec,
	0x0bf0, 0x0bf3, 0x0bf7, 0x0bfb, 0x0bfe, 0x0e01, 0x0e03, 0x0e05,
	0x0e07, 0x0e08, 0x0e0a, 0x0e0c, 0x0e0e, 0x0e10, 0x0e12, 0x0e14,
	0x0e16, 0x0e18, 0x0e1a, 0x0e1c, 0x0e1e, 0x0e20, 0x0e21, 0x0e23,
	0x0e25, 0x0e27, 0x0e29, 0x0e2b, 0x0e2d, 0x0e2f, 0x0e31, 0x0e34,
	0x0e36, 0x0e38, 0x0e3a, 0x0e3c, 0x0e3e, 0x0e40, 0x0e42, 0x0e44,
	0x0e46, 0x0e48, 0x0e4a, 0x0e4c, 0x0e4f, 0x0e51, 0x0e53, 0x0e55,
	0x0e57, 0x0e59, 0x0e5c, 0x0e5e, 0x0e60, 0x0e62, 0x0e64, 0x0e67,
	0x0e69, 0x0e6b, 0x0e6d, 0x0e6f, 0x0e72, 0x0e74, 0x0e76, 0x0e79,
	0x0e7b, 0x0e7d, 0x0e7f, 0x0e82, 0x0e84, 0x0e86, 0x0e89, 0x0e8b,
	0x0e8d, 0x0e90, 0x0e92, 0x0e95, 0x0e97, 0x0e99, 0x0e9c, 0x0e9e,
	0x0ea1, 0x0ea3, 0x0ea5, 0x0ea8, 0x0eaa, 0x0ead, 0x0eaf, 0x0eb2,
	0x0eb4, 0x0eb7, 0x0eb9, 0x0ebc, 0x0ebe, 0x0ec1, 0x0ec3, 0x0ec6,
	0x0ec9, 0x0ecb, 0x0ece, 0x0ed0, 0x0ed3, 0x0ed6, 0x0ed8, 0x0edb,
	0x0edd, 0x0ee0, 0x0ee3, 0x0ee5, 0x0ee8, 0x0eeb, 0x0eed, 0x0ef0,
	0x0ef3, 0x0ef6, 0x0ef8, 0x0efb, 0x0efe, 0x0f01, 0x0f03, 0x0f06,
	0x0f09, 0x0f0c, 0x0f0f, 0x0f11, 0x0f14, 0x0f17, 0x0f1a, 0x0f1d,
	0x0f20, 0x0f23, 0x0f26, 0x0f29, 0x0f2b, 0x0f2e, 0x0f31, 0x0f34,
	0x0f37, 0x0f3a, 0x0f3d, 0x0f40, 0x0f43, 0x0f46, 0x0f49, 0x0f4c,
	0x0f4f, 0x0f52, 0x0f56, 0x0f59, 0x0f5c, 0x0f5f, 0x0f62, 0x0f65,
	0x0f68, 0x0f6b, 0x0f6f, 0x0f72, 0x0f75, 0x0f78, 0x0f7b, 0x0f7f,
	0x0f82, 0x0f85, 0x0f88, 0x0f8c, 0x0f8f, 0x0f92, 0x0f95, 0x0f99,
	0x0f9c, 0x0f9f, 0x0fa3, 0x0fa6, 0x0fa9, 0x0fad, 0x0fb0, 0x0fb4,
	0x0fb7, 0x0fbb, 0x0fbe, 0x0fc1, 0x0fc5, 0x0fc8, 0x0fcc, 0x0fcf,
	0x0fd3, 0x0fd7, 0x0fda, 0x0fde, 0x0fe1, 0x0fe5, 0x0fe8, 0x0fec,
	0x0ff0, 0x0ff3, 0x0ff7, 0x0ffb, 0x0ffe, 0x1201, 0x1203, 0x1205,
	0x1207, 0x1208, 0x120a, 0x120c, 0x120e, 0x1210, 0x1212, 0x1214,
	0x1216, 0x1218, 0x121a, 0x121c, 0x121e, 0x1220, 0x1221, 0x1223,
	0x1225, 0x1227, 0x1229, 0x122b, 0x122d, 0x122f, 0x1231, 0x1234,
	0x1236, 0x1238, 0x123a, 0x123c, 0x123e, 0x1240, 0x1242, 0x1244,
	0x1246, 0x1248, 0x124a, 0x124c, 0x124f, 0x1251, 0x1253, 0x1255,
	0x1257, 0x1259, 0x125c, 0x125e, 0x1260, 0x1262, 0x1264, 0x1267,
	0x1269, 0x126b, 0x126d, 0x126f, 0x1272, 0x1274, 0x1276, 0x1279,
	0x127b, 0x127d, 0x127f, 0x1282, 0x1284, 0x1286, 0x1289, 0x128b,
	0x128d, 0x1290, 0x1292, 0x1295, 0x1297, 0x1299, 0x129c, 0x129e,
	0x12a1, 0x12a3, 0x12a5, 0x12a8, 0x12aa, 0x12ad, 0x12af, 0x12b2,
	0x12b4, 0x12b7, 0x12b9, 0x12bc, 0x12be, 0x12c1, 0x12c3, 0x12c6,
	0x12c9, 0x12cb, 0x12ce, 0x12d0, 0x12d3, 0x12d6, 0x12d8, 0x12db,
	0x12dd, 0x12e0, 0x12e3, 0x12e5, 0x12e8, 0x12eb, 0x12ed, 0x12f0,
	0x12f3, 0x12f6, 0x12f8, 0x12fb, 0x12fe, 0x1301, 0x1303, 0x1306,
	0x1309, 0x130c, 0x130f, 0x1311, 0x1314, 0x1317, 0x131a, 0x131d,
	0x1320, 0x1323, 0x1326, 0x1329, 0x132b, 0x132e, 0x1331, 0x1334,
	0x1337, 0x133a, 0x133d, 0x1340, 0x1343, 0x1346, 0x1349, 0x134c,
	0x134f, 0x1352, 0x1356, 0x1359, 0x135c, 0x135f, 0x1362, 0x1365,
	0x1368, 0x136b, 0x136f, 0x1372, 0x1375, 0x1378, 0x137b, 0x137f,
	0x1382, 0x1385, 0x1388, 0x138c, 0x138f, 0x1392, 0x1395, 0x1399,
	0x139c, 0x139f, 0x13a3, 0x13a6, 0x13a9, 0x13ad, 0x13b0, 0x13b4,
	0x13b7, 0x13bb, 0x13be, 0x13c1, 0x13c5, 0x13c8, 0x13cc, 0x13cf,
	0x13d3, 0x13d7, 0x13da, 0x13de, 0x13e1, 0x13e5, 0x13e8, 0x13ec,
	0x13f0, 0x13f3, 0x13f7, 0x13fb, 0x13fe, 0x1601, 0x1603, 0x1605,
	0x1607, 0x1608, 0x160a, 0x160c, 0x160e, 0x1610, 0x1612, 0x1614,
	0x1616, 0x1618, 0x161a, 0x161c, 0x161e, 0x1620, 0x1621, 0x1623,
	0x1625, 0x1627, 0x1629, 0x162b, 0x162d, 0x162f, 0x1631, 0x1634,
	0x1636, 0x1638, 0x163a, 0x163c, 0x163e, 0x1640, 0x1642, 0x1644,
	0x1646, 0x1648, 0x164a, 0x164c, 0x164f, 0x1651, 0x1653, 0x1655,
	0x1657, 0x1659, 0x165c, 0x165e, 0x1660, 0x1662, 0x1664, 0x1667,
	0x1669, 0x166b, 0x166d, 0x166f, 0x1672, 0x1674, 0x1676, 0x1679,
	0x167b, 0x167d, 0x167f, 0x1682, 0x1684, 0x1686, 0x1689, 0x168b,
	0x168d, 0x1690, 0x1692, 0x1695, 0x1697, 0x1699, 0x169c, 0x169e,
	0x16a1, 0x16a3, 0x16a5, 0x16a8, 0x16aa, 0x16ad, 0x16af, 0x16b2,
	0x16b4, 0x16b7, 0x16b9, 0x16bc, 0x16be, 0x16c1, 0x16c3, 0x16c6,
	0x16c9, 0x16cb, 0x16ce, 0x16d0, 0x16d3, 0x16d6, 0x16d8, 0x16db,
	0x16dd, 0x16e0, 0x16e3, 0x16e5, 0x16e8, 0x16eb, 0x16ed, 0x16f0,
	0x16f3, 0x16f6, 0x16f8, 0x16fb, 0x16fe, 0x1701, 0x1703, 0x1706,
	0x1709, 0x170c, 0x170f, 0x1711, 0x1714, 0x1717, 0x171a, 0x171d,
	0x1720, 0x1723, 0x1726, 0x1729, 0x172b, 0x172e, 0x1731, 0x1734,
	0x1737, 0x173a, 0x173d, 0x1740, 0x1743, 0x1746, 0x1749, 0x174c,
	0x174f, 0x1752, 0x1756, 0x1759, 0x175c, 0x175f, 0x1762, 0x1765,
	0x1768, 0x176b, 0x176f, 0x1772, 0x1775, 0x1778, 0x177b, 0x177f,
	0x1782, 0x1785, 0x1788, 0x178c, 0x178f, 0x1792, 0x1795, 0x1799,
	0x179c, 0x179f, 0x17a3, 0x17a6, 0x17a9, 0x17ad, 0x17b0, 0x17b4,
	0x17b7, 0x17bb, 0x17be, 0x17c1, 0x17c5, 0x17c8, 0x17cc, 0x17cf,
	0x17d3, 0x17d7, 0x17da, 0x17de, 0x17e1, 0x17e5, 0x17e8, 0x17ec,
	0x17f0, 0x17f3, 0x17f7, 0x17fb, 0x17fe, 0x1a01, 0x1a03, 0x1a05,
	0x1a07, 0x1a08, 0x1a0a, 0x1a0c, 0x1a0e, 0x1a10, 0x1a12, 0x1a14,
	0x1a16, 0x1a18, 0x1a1a, 0x1a1c, 0x1a1e, 0x1a20, 0x1a21, 0x1a23,
	0x1a25, 0x1a27, 0x1a29, 0x1a2b, 0x1a2d, 0x1a2f, 0x1a31, 0x1a34,
	0x1a36, 0x1a38, 0x1a3a, 0x1a3c, 0x1a3e, 0x1a40, 0x1a42, 0x1a44,
	0x1a46, 0x1a48, 0x1a4a, 0x1a4c, 0x1a4f, 0x1a51, 0x1a53, 0x1a55,
	0x1a57, 0x1a59, 0x1a5c, 0x1a5e, 0x1a60, 0x1a62, 0x1a64, 0x1a67,
	0x1a69, 0x1a6b, 0x1a6d, 0x1a6f, 0x1a72, 0x1a74, 0x1a76, 0x1a79,
	0x1a7b, 0x1a7d, 0x1a7f, 0x1a82, 0x1a84, 0x1a86, 0x1a89, 0x1a8b,
	0x1a8d, 0x1a90, 0x1a92, 0x1a95, 0x1a97, 0x1a99, 0x1a9c, 0x1a9e,
	0x1aa1, 0x1aa3, 0x1aa5, 0x1aa8, 0x1aaa, 0x1aad, 0x1aaf, 0x1ab2,
	0x1ab4, 0x1ab7, 0x1ab9, 0x1abc, 0x1abe, 0x1ac1, 0x1ac3, 0x1ac6,
	0x1ac9, 0x1acb, 0x1ace, 0x1ad0, 0x1ad3, 0x1ad6, 0x1ad8, 0x1adb,
	0x1add, 0x1ae0, 0x1ae3, 0x1ae5, 0x1ae8, 0x1aeb, 0x1aed, 0x1af0,
	0x1af3, 0x1af6, 0x1af8, 0x1afb, 0x1afe, 0x1b01, 0x1b03, 0x1b06,
	0x1b09, 0x1b0c, 0x1b0f, 0x1b11, 0x1b14, 0x1b17, 0x1b1a, 0x1b1d,
	0x1b20, 0x1b23, 0x1b26, 0x1b29, 0x1b2b, 0x1b2e, 0x1b31, 0x1b34,
	0x1b37, 0x1b3a, 0x1b3d, 0x1b40, 0x1b43, 0x1b46, 0x1b49, 0x1b4c,
	0x1b4f, 0x1b52, 0x1b56, 0x1b59, 0x1b5c, 0x1b5f, 0x1b62, 0x1b65,
	0x1b68, 0x1b6b, 0x1b6f, 0x1b72, 0x1b75, 0x1b78, 0x1b7b, 0x1b7f,
	0x1b82, 0x1b85, 0x1b88, 0x1b8c, 0x1b8f, 0x1b92, 0x1b95, 0x1b99,
	0x1b9c, 0x1b9f, 0x1ba3, 0x1ba6, 0x1ba9, 0x1bad, 0x1bb0, 0x1bb4,
	0x1bb7, 0x1bbb, 0x1bbe, 0x1bc1, 0x1bc5, 0x1bc8, 0x1bcc, 0x1bcf,
	0x1bd3, 0x1bd7, 0x1bda, 0x1bde, 0x1be1, 0x1be5, 0x1be8, 0x1bec,
	0x1bf0, 0x1bf3, 0x1bf7, 0x1bfb, 0x1bfe, 0x1e01, 0x1e03, 0x1e05,
	0x1e07, 0x1e08, 0x1e0a, 0x1e0c, 0x1e0e, 0x1e10, 0x1e12, 0x1e14,
	0x1e16, 0x1e18, 0x1e1a, 0x1e1c, 0x1e1e, 0x1e20, 0x1e21, 0x1e23,
	0x1e25, 0x1e27, 0x1e29, 0x1e2b, 0x1e2d, 0x1e2f, 0x1e31, 0x1e34,
	0x1e36, 0x1e38, 0x1e3a, 0x1e3c, 0x1e3e, 0x1e40, 0x1e42, 0x1e44,
	0x1e46, 0x1e48, 0x1e4a, 0x1e4c, 0x1e4f, 0x1e51, 0x1e53, 0x1e55,
	0x1e57, 0x1e59, 0x1e5c, 0x1e5e, 0x1e60, 0x1e62, 0x1e64, 0x1e67,
	0x1e69, 0x1e6b, 0x1e6d, 0x1e6f, 0x1e72, 0x1e74, 0x1e76, 0x1e79,
	0x1e7b, 0x1e7d, 0x1e7f, 0x1e82, 0x1e84, 0x1e86, 0x1e89, 0x1e8b,
	0x1e8d, 0x1e90, 0x1e92, 0x1e95, 0x1e97, 0x1e99, 0x1e9c, 0x1e9e,
	0x1ea1, 0x1ea3, 0x1ea5, 0x1ea8, 0x1eaa, 0x1ead, 0x1eaf, 0x1eaf,
}
